// Package wavefront converts Wavefront OBJ/MTL text into material-grouped,
// non-indexed vertex buffers ready for upload by a renderer.
//
// The pipeline is Source -> Lines -> Count -> Parser -> Assemble. It keeps no
// global state, so independent loads may run concurrently.
package wavefront

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// RawText is the complete content of a source file.
type RawText struct {
	Name string
	Data []byte
}

// Len returns the content length in bytes.
func (t RawText) Len() int {
	return len(t.Data)
}

// Source loads named files fully into memory.
// Implementations must be safe for concurrent use.
type Source interface {
	Load(path string) (RawText, error)
}

// FileSource reads files from the local filesystem.
type FileSource struct{}

// Load reads path as raw bytes, without newline translation.
// A missing or unreadable file yields an error wrapping ErrNotFound.
func (FileSource) Load(path string) (RawText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return RawText{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		// Any open/read failure is reported as not found; the cause stays in the message.
		return RawText{}, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return RawText{Name: path, Data: data}, nil
}
