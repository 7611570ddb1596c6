// objtool is a CLI utility for inspecting Wavefront OBJ/MTL assets.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/Faultbox/objmesh/internal/logger"
)

func main() {
	app := cli.NewApp()
	app.Name = "objtool"
	app.Usage = "inspect Wavefront OBJ/MTL assets and the meshes built from them"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to objmesh.yaml",
		},
		cli.StringFlag{
			Name:  "models",
			Usage: "prefix for mtllib file names (overrides assets.models_root)",
		},
		cli.StringFlag{
			Name:  "textures",
			Usage: "prefix for map_Kd file names (overrides assets.textures_root)",
		},
		cli.StringFlag{
			Name:  "encoding",
			Usage: "source text encoding, e.g. euc-kr or windows-1252",
		},
		cli.StringFlag{
			Name:  "strategy",
			Usage: "parse strategy: counted or growable",
		},
		cli.IntFlag{
			Name:  "workers, j",
			Usage: "number of models loaded in parallel",
		},
		cli.BoolFlag{
			Name:  "no-cache",
			Usage: "do not keep source text in memory between loads",
		},
		cli.BoolFlag{
			Name:  "debug, v",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "also write logs to this file",
		},
	}
	app.Before = setup
	app.After = func(*cli.Context) error {
		logger.Sync()
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "inspect",
			Usage: "load models and print their material meshes",
			Description: `
Parse each OBJ file together with its material library and expand every
usemtl group into a non-indexed vertex buffer. One table is printed per model.`,
			ArgsUsage: "model1.obj model2.obj ...",
			Action:    cmdInspect,
		},
		{
			Name:      "count",
			Usage:     "print directive counts of OBJ files",
			ArgsUsage: "model1.obj model2.obj ...",
			Action:    cmdCount,
		},
		{
			Name:      "materials",
			Aliases:   []string{"mtl"},
			Usage:     "print the material table of MTL files",
			ArgsUsage: "lib1.mtl lib2.mtl ...",
			Action:    cmdMaterials,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
