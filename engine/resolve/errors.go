package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/kage/core"
)

// Reasons for a failed resolution.
var (
	ErrRootNotFound       = errors.New("glyph not found")
	ErrMissingComponent   = errors.New("component glyph not found")
	ErrMalformedReference = errors.New("composite stroke without glyph reference")
	ErrCycle              = errors.New("cyclic glyph reference")
	ErrTooDeep            = errors.New("glyph references nested too deeply")
)

// Error describes a failed resolution.
type Error struct {
	Root   string   // glyph resolution started with
	Name   string   // glyph which could not be resolved
	Path   []string // references from the root down to Name
	Reason error    // one of the sentinel errors
}

func (e *Error) Error() string {
	if e.Reason == ErrRootNotFound {
		return fmt.Sprintf("resolving %s: %v", e.Root, e.Reason)
	}
	return fmt.Sprintf("resolving %s: %v: %s (via %s)", e.Root, e.Reason, e.Name,
		strings.Join(e.Path, " → "))
}

func (e *Error) Unwrap() error {
	return e.Reason
}

// ErrorCode maps the reason of failure to a core error code.
func (e *Error) ErrorCode() int {
	switch e.Reason {
	case ErrRootNotFound, ErrMissingComponent:
		return core.EMISSING
	case ErrCycle:
		return core.ECYCLIC
	case ErrMalformedReference, ErrTooDeep:
		return core.EINVALID
	}
	return core.EINTERNAL
}

// UserMessage is a short message suitable for reporting skipped glyphs.
func (e *Error) UserMessage() string {
	if e.Reason == ErrRootNotFound {
		return fmt.Sprintf("%v: %s", e.Reason, e.Root)
	}
	return fmt.Sprintf("%v: %s", e.Reason, e.Name)
}

var _ core.AppError = &Error{}
