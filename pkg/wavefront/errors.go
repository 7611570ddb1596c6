package wavefront

import (
	"errors"
	"fmt"
)

// Load errors. Every failure returned by this package wraps exactly one of these.
var (
	ErrNotFound              = errors.New("file not found")
	ErrMalformedNumber       = errors.New("malformed number")
	ErrUnsupportedFaceFormat = errors.New("unsupported face format")
	ErrFaceBeforeMaterial    = errors.New("face before usemtl")
	ErrMaterialNotFound      = errors.New("material not found")
	ErrMalformedMaterial     = errors.New("map_Kd before newmtl")
	ErrIndexOutOfRange       = errors.New("face index out of range")
	ErrMalformedDirective    = errors.New("malformed directive")
)

// ParseError attaches a file and 1-based line number to a load error.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func lineError(file string, line int, kind error, format string, args ...any) error {
	return &ParseError{
		File: file,
		Line: line,
		Err:  fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}
