package encoding

import (
	"bytes"
	"testing"
)

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		label string
		want  string
	}{
		{"utf-8 passthrough", []byte("newmtl red"), "", "newmtl red"},
		{"utf-8 bom stripped", append([]byte{0xEF, 0xBB, 0xBF}, "v 1 2 3"...), "utf-8", "v 1 2 3"},
		{"euc-kr", []byte{'m', 'a', 'p', '_', 'K', 'd', ' ', 0xC7, 0xD1, '.', 'p', 'n', 'g'}, "euc-kr", "map_Kd 한.png"},
		{"windows-1252", []byte{'n', 'e', 'w', 'm', 't', 'l', ' ', 'c', 'a', 'f', 0xE9}, "windows-1252", "newmtl café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTF8(tt.data, tt.label)
			if err != nil {
				t.Fatalf("ToUTF8: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToUTF8_UnknownLabel(t *testing.T) {
	if _, err := ToUTF8([]byte("x"), "klingon"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestToUTF8_NoCopyForUTF8(t *testing.T) {
	data := []byte("v 0 0 0")
	got, _ := ToUTF8(data, "UTF-8")
	if &got[0] != &data[0] {
		t.Error("UTF-8 input was copied")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %q", got)
	}
}

func TestValidate(t *testing.T) {
	for _, label := range []string{"", "utf-8", "UTF8", "euc-kr", "shift_jis", "windows-1252"} {
		if err := Validate(label); err != nil {
			t.Errorf("Validate(%q): %v", label, err)
		}
	}
	if err := Validate("not-an-encoding"); err == nil {
		t.Error("Validate accepted an unknown label")
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"crate.mtl", "crate.mtl"},
		{`sub\crate.mtl`, "sub/crate.mtl"},
		{`a\b\c.mtl`, "a/b/c.mtl"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
