package parser

import "fmt"

// ErrorKind classifies a failed parse.
type ErrorKind int

const (
	// InvalidImageSupplied means the color model is neither RGB nor
	// monochrome.
	InvalidImageSupplied ErrorKind = iota + 1
	// UnableToParseImage means the pixel buffer could not be read.
	UnableToParseImage
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidImageSupplied:
		return "InvalidImageSupplied"
	case UnableToParseImage:
		return "UnableToParseImage"
	default:
		return "Unknown"
	}
}

// ParseError is returned by Parse. It is reported before any pixel state
// is built.
type ParseError struct {
	Kind   ErrorKind
	Reason string
	Err    error // underlying cause, if any
}

// Sentinels for errors.Is. They match any ParseError of the same kind.
var (
	ErrInvalidImageSupplied = &ParseError{Kind: InvalidImageSupplied}
	ErrUnableToParseImage   = &ParseError{Kind: UnableToParseImage}
)

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is a ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

const (
	reasonUnreadable = "Couldn't access image data"
	reasonBadModel   = "Image is not in the correct format. Acceptable formats include RGBA and MonoChrome"
)
