package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeTerminalSetup ErrorType = iota
	ErrTypeRender
	ErrTypeInputRead
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeTerminalSetup:
		return "terminal setup"
	case ErrTypeRender:
		return "render"
	case ErrTypeInputRead:
		return "input read"
	default:
		return "generic"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// Wrap attaches a type and message to err. A nil err yields a plain typed error.
func Wrap(errType ErrorType, message string, err error) error {
	return &CustomError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether any error in err's chain is a CustomError of type t.
func IsType(err error, t ErrorType) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type == t
	}
	return false
}

var ErrNotATerminal = NewCustomError(ErrTypeTerminalSetup, "stdin and stdout must be attached to a terminal")
