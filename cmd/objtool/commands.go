package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/assets"
	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/logger"
)

var manager *assets.Manager

// setup loads the configuration, starts logging and builds the asset manager.
func setup(ctx *cli.Context) error {
	cfg, err := config.Load(config.Overrides{
		ConfigPath:   ctx.GlobalString("config"),
		ModelsRoot:   ctx.GlobalString("models"),
		TexturesRoot: ctx.GlobalString("textures"),
		Encoding:     ctx.GlobalString("encoding"),
		Strategy:     ctx.GlobalString("strategy"),
		Workers:      ctx.GlobalInt("workers"),
		NoCache:      ctx.GlobalBool("no-cache"),
		Debug:        ctx.GlobalBool("debug"),
		LogFile:      ctx.GlobalString("log-file"),
	})
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		zap.String("models_root", cfg.Assets.ModelsRoot),
		zap.String("textures_root", cfg.Assets.TexturesRoot),
		zap.String("strategy", cfg.Loader.Strategy),
	)

	manager, err = assets.NewManager(cfg)
	return err
}

func requireArgs(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no input files; usage: objtool %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return nil
}

func cmdInspect(ctx *cli.Context) error {
	if err := requireArgs(ctx); err != nil {
		return err
	}

	models, err := manager.LoadAll(context.Background(), ctx.Args())
	if err != nil {
		return err
	}
	for _, model := range models {
		fmt.Printf("%s\n%s\n", model.Path, meshTable(model))
	}
	if cache := manager.Cache(); cache != nil {
		hits, misses := cache.Stats()
		logger.Debug("source cache", zap.Int("hits", hits), zap.Int("misses", misses))
	}
	return nil
}

func cmdCount(ctx *cli.Context) error {
	if err := requireArgs(ctx); err != nil {
		return err
	}

	for _, path := range ctx.Args() {
		counts, err := manager.Count(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s\n", path, countTable(counts))
	}
	return nil
}

func cmdMaterials(ctx *cli.Context) error {
	if err := requireArgs(ctx); err != nil {
		return err
	}

	for _, path := range ctx.Args() {
		table, err := manager.Materials(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s\n", path, materialTable(table))
	}
	return nil
}
