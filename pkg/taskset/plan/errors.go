package plan

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrUnknownKind       = errors.New("unknown task kind")
	ErrUnsupportedFormat = errors.New("unsupported plan format")
)

// PlanError wraps plan decoding, validation and build failures.
type PlanError struct {
	Kind error
	Path string
	Msg  string
}

func (e *PlanError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	return msg
}

func (e *PlanError) Unwrap() error { return e.Kind }

func invalidf(path, format string, args ...any) error {
	return &PlanError{Kind: ErrInvalidPlan, Path: path, Msg: fmt.Sprintf(format, args...)}
}
