package wavefront

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeAsset writes name under dir and returns its path.
func writeAsset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadOBJ_SingleTriangle(t *testing.T) {
	dir := t.TempDir()
	models := dir + "/models/"
	objPath := writeAsset(t, dir, "models/tri.obj", triangleOBJ)
	writeAsset(t, dir, "models/m.mtl", "newmtl red\nmap_Kd red.png\n")

	meshes, err := LoadOBJ(objPath, models, "textures/")
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	m := meshes[0]
	if m.VertexCount != 3 {
		t.Errorf("VertexCount = %d, want 3", m.VertexCount)
	}
	if len(m.Vertices) != 24 {
		t.Errorf("len(Vertices) = %d, want 24", len(m.Vertices))
	}
	if m.Texture != "textures/red.png" {
		t.Errorf("Texture = %q, want textures/red.png", m.Texture)
	}
}

func TestLoader_Testdata(t *testing.T) {
	for _, strategy := range []Strategy{StrategyCounted, StrategyGrowable} {
		t.Run(strategy.String(), func(t *testing.T) {
			l := Loader{
				ModelsRoot:   "testdata/models/",
				TexturesRoot: "testdata/textures/",
				Strategy:     strategy,
			}
			meshes, err := l.Load("testdata/models/crate.obj")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			want := []struct {
				material string
				texture  string
				vertices int
			}{
				{"wood", "testdata/textures/wood.png", 3},
				{"metal", "testdata/textures/metal_plate.png", 6},
			}
			if len(meshes) != len(want) {
				t.Fatalf("got %d meshes, want %d", len(meshes), len(want))
			}

			total := 0
			for i, w := range want {
				m := meshes[i]
				if m.Material != w.material || m.Texture != w.texture || m.VertexCount != w.vertices {
					t.Errorf("mesh %d = {%s %s %d}, want {%s %s %d}",
						i, m.Material, m.Texture, m.VertexCount, w.material, w.texture, w.vertices)
				}
				if len(m.Vertices) != m.VertexCount*VertexStride {
					t.Errorf("mesh %d: %d floats for %d vertices", i, len(m.Vertices), m.VertexCount)
				}
				total += m.VertexCount
			}

			obj, err := l.LoadObject("testdata/models/crate.obj")
			if err != nil {
				t.Fatalf("LoadObject: %v", err)
			}
			if total != 3*obj.FaceCount() {
				t.Errorf("total vertices %d, want 3 * %d faces", total, obj.FaceCount())
			}
		})
	}
}

func TestLoader_Deterministic(t *testing.T) {
	l := Loader{ModelsRoot: "testdata/models/", TexturesRoot: "textures/"}
	first, err := l.Load("testdata/models/crate.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := l.Load("testdata/models/crate.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two loads of the same file differ")
	}

	// Both strategies must agree as well.
	l.Strategy = StrategyGrowable
	third, err := l.Load("testdata/models/crate.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(first, third) {
		t.Error("counted and growable strategies produce different meshes")
	}
}

func TestLoadOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		obj     string
		mtl     string
		wantErr error
	}{
		{
			name:    "unknown material",
			obj:     "mtllib m.mtl\nv 0 0 0\nvt 0 0\nvn 0 0 1\nusemtl blue\nf 1/1/1 1/1/1 1/1/1\n",
			mtl:     "newmtl red\nmap_Kd red.png\n",
			wantErr: ErrMaterialNotFound,
		},
		{
			name:    "face before material",
			obj:     "mtllib m.mtl\nv 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 1/1/1\n",
			mtl:     "newmtl red\n",
			wantErr: ErrFaceBeforeMaterial,
		},
		{
			name:    "missing uv index",
			obj:     "mtllib m.mtl\nv 0 0 0\nvn 0 0 1\nusemtl red\nf 1//1 1//1 1//1\n",
			mtl:     "newmtl red\n",
			wantErr: ErrUnsupportedFaceFormat,
		},
		{
			name:    "malformed material file",
			obj:     "mtllib m.mtl\n",
			mtl:     "map_Kd red.png\n",
			wantErr: ErrMalformedMaterial,
		},
		{
			name:    "index past parsed positions",
			obj:     "mtllib m.mtl\nv 0 0 0\nvt 0 0\nvn 0 0 1\nusemtl red\nf 1/1/1 2/1/1 1/1/1\n",
			mtl:     "newmtl red\n",
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "missing material library",
			obj:     "mtllib other.mtl\n",
			mtl:     "newmtl red\n",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			objPath := writeAsset(t, dir, "scene.obj", tt.obj)
			writeAsset(t, dir, "m.mtl", tt.mtl)

			meshes, err := LoadOBJ(objPath, dir+"/", "textures/")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if meshes != nil {
				t.Errorf("got %d meshes alongside an error", len(meshes))
			}
		})
	}
}

func TestLoadOBJ_MissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj"), "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoader_BackslashMtlLib(t *testing.T) {
	dir := t.TempDir()
	objPath := writeAsset(t, dir, "scene.obj", "mtllib sub\\m.mtl\n")
	writeAsset(t, dir, "sub/m.mtl", "newmtl red\n")

	l := Loader{ModelsRoot: dir + "/"}
	obj, err := l.LoadObject(objPath)
	if err != nil {
		t.Fatalf("LoadObject: %v", err)
	}
	if _, ok := obj.Materials.Lookup("red"); !ok {
		t.Error("material red not loaded through backslash path")
	}
}

type mapSource map[string]string

func (s mapSource) Load(path string) (RawText, error) {
	text, ok := s[path]
	if !ok {
		return RawText{}, ErrNotFound
	}
	return RawText{Name: path, Data: []byte(text)}, nil
}

func TestLoader_CustomSource(t *testing.T) {
	src := mapSource{
		"scene.obj":    triangleOBJ,
		"assets/m.mtl": "newmtl red\nmap_Kd red.png\n",
	}
	l := Loader{Source: src, ModelsRoot: "assets/", TexturesRoot: "tex/"}
	meshes, err := l.Load("scene.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(meshes) != 1 || meshes[0].Texture != "tex/red.png" {
		t.Errorf("meshes = %+v", meshes)
	}
	if got := l.MaterialPath("m.mtl"); got != "assets/m.mtl" {
		t.Errorf("MaterialPath = %q, want assets/m.mtl", got)
	}
}

func TestRawText_Len(t *testing.T) {
	if n := (RawText{Data: []byte("v 1 2 3\n")}).Len(); n != 8 {
		t.Errorf("Len = %d, want 8", n)
	}
}
