package wavefront

import (
	"github.com/Faultbox/objmesh/pkg/encoding"
)

// Loader runs the full OBJ pipeline against a Source.
type Loader struct {
	Source Source // FileSource when nil

	// ModelsRoot is prepended to mtllib names, TexturesRoot to map_Kd names.
	// Both are joined by plain concatenation, so directory roots need a
	// trailing separator.
	ModelsRoot   string
	TexturesRoot string

	Strategy Strategy
}

func (l *Loader) source() Source {
	if l.Source == nil {
		return FileSource{}
	}
	return l.Source
}

// MaterialPath returns the path a mtllib name resolves to.
func (l *Loader) MaterialPath(name string) string {
	return l.ModelsRoot + encoding.NormalizePath(name)
}

// LoadObject loads and parses path without assembling meshes.
func (l *Loader) LoadObject(path string) (*Object, error) {
	src := l.source()
	text, err := src.Load(path)
	if err != nil {
		return nil, err
	}
	p := Parser{
		Strategy: l.Strategy,
		LoadMaterials: func(name string) (*MaterialTable, error) {
			return LoadMTL(src, l.MaterialPath(name))
		},
	}
	return p.Parse(text)
}

// Load returns the meshes of path, one per usemtl group in file order.
func (l *Loader) Load(path string) ([]Mesh, error) {
	obj, err := l.LoadObject(path)
	if err != nil {
		return nil, err
	}
	return Assemble(&obj.Attributes, obj.Groups, obj.Materials, l.TexturesRoot)
}

// LoadOBJ loads path from the filesystem with the counted strategy.
func LoadOBJ(path, modelsRoot, texturesRoot string) ([]Mesh, error) {
	l := Loader{ModelsRoot: modelsRoot, TexturesRoot: texturesRoot}
	return l.Load(path)
}
