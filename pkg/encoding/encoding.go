// Package encoding provides text encoding utilities for OBJ/MTL sources.
package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsUTF8 reports whether label names UTF-8 or is empty.
func IsUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// Validate returns an error if label is not a known WHATWG encoding name.
func Validate(label string) error {
	if IsUTF8(label) {
		return nil
	}
	if _, err := htmlindex.Get(label); err != nil {
		return fmt.Errorf("unknown text encoding %q", label)
	}
	return nil
}

// ToUTF8 converts data in the named encoding (e.g. "euc-kr", "windows-1252")
// to UTF-8. A leading byte order mark is removed. For UTF-8 the input is
// returned without copying.
func ToUTF8(data []byte, label string) ([]byte, error) {
	if IsUTF8(label) {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q", label)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", label, err)
	}
	return out, nil
}

// NormalizePath converts backslashes to forward slashes so that file names
// written by Windows exporters resolve on every platform.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
