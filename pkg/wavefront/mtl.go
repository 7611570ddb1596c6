package wavefront

// Material is a named MTL entry. Only the diffuse texture is retained.
type Material struct {
	Name    string
	Texture string // map_Kd file name as written in the MTL file
}

// MaterialTable is an ordered set of materials addressed by exact name.
// When a name is defined twice, the first definition is authoritative.
type MaterialTable struct {
	Materials []Material
	index     map[string]int
}

// NewMaterialTable returns an empty table.
func NewMaterialTable() *MaterialTable {
	return &MaterialTable{index: make(map[string]int)}
}

// Add appends m. A later entry with an already-known name is kept in
// Materials but is never returned by Lookup.
func (t *MaterialTable) Add(m Material) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.Materials = append(t.Materials, m)
	if _, ok := t.index[m.Name]; !ok {
		t.index[m.Name] = len(t.Materials) - 1
	}
}

// Merge appends every material of other, in order.
func (t *MaterialTable) Merge(other *MaterialTable) {
	if other == nil {
		return
	}
	for _, m := range other.Materials {
		t.Add(m)
	}
}

// Lookup returns the first material named name.
func (t *MaterialTable) Lookup(name string) (Material, bool) {
	if t == nil {
		return Material{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return Material{}, false
	}
	return t.Materials[i], true
}

// Len returns the number of material records.
func (t *MaterialTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Materials)
}

// ParseMTL parses MTL text. name is used only for error positions.
//
// newmtl opens a record with an empty texture, map_Kd sets the texture of the
// open record, and every other directive is ignored.
func ParseMTL(data []byte, name string) (*MaterialTable, error) {
	table := NewMaterialTable()
	open := -1

	for n, line := range Lines(data) {
		f := fields(line)
		if f == nil {
			continue
		}
		switch string(f[0]) {
		case dirNewMtl:
			if len(f) < 2 {
				return nil, lineError(name, n, ErrMalformedDirective, "newmtl without a name")
			}
			table.Add(Material{Name: string(f[1])})
			open = len(table.Materials) - 1
		case dirMapKd:
			if open < 0 {
				return nil, lineError(name, n, ErrMalformedMaterial, "map_Kd outside of a material")
			}
			if len(f) < 2 {
				return nil, lineError(name, n, ErrMalformedDirective, "map_Kd without a file name")
			}
			// Option flags may precede the file name; the file name is last.
			table.Materials[open].Texture = string(f[len(f)-1])
		}
	}
	return table, nil
}

// LoadMTL reads path from src and parses it.
func LoadMTL(src Source, path string) (*MaterialTable, error) {
	text, err := src.Load(path)
	if err != nil {
		return nil, err
	}
	return ParseMTL(text.Data, path)
}
