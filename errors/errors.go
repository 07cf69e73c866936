package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhasePush    Phase = "push"    // Go to Lua
	PhaseRead    Phase = "read"    // Lua to Go
	PhaseTable   Phase = "table"   // table field access
	PhaseScript  Phase = "script"  // script loading/execution
	PhaseRuntime Phase = "runtime" // state management
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch   Kind = "type_mismatch"
	KindNotTable       Kind = "not_table"
	KindBadSequenceKey Kind = "bad_sequence_key"
	KindElement        Kind = "element"
	KindWriteOnly      Kind = "write_only"
	KindOutOfRange     Kind = "out_of_range"
	KindUnsupported    Kind = "unsupported"
	KindNotFound       Kind = "not_found"
	KindScriptError    Kind = "script_error"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Want   string // diagnostic codec name, e.g. "integer"
	Got    string // dynamic type name found on the stack
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Want sets the diagnostic name of the requested type
func (b *Builder) Want(name string) *Builder {
	b.err.Want = name
	return b
}

// Got sets the dynamic type name found on the stack
func (b *Builder) Got(name string) *Builder {
	b.err.Got = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, want, got string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeMismatch,
		Path:  path,
		Want:  want,
		Got:   got,
	}
}

// NotTable reports that a container conversion found something other than a table
func NotTable(phase Phase, path []string, got string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindNotTable,
		Path:  path,
		Want:  "table",
		Got:   got,
	}
}

// BadSequenceKey reports a table key that breaks the consecutive 1..n shape
func BadSequenceKey(phase Phase, path []string, key any, position int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadSequenceKey,
		Path:   path,
		Detail: fmt.Sprintf("key %v does not continue the sequence at element %d", key, position),
		Value:  key,
	}
}

// Element reports a failed element conversion inside a container
func Element(phase Phase, path []string, position int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindElement,
		Path:   path,
		Detail: fmt.Sprintf("element %d", position),
		Cause:  cause,
	}
}

// WriteOnly reports a read through a push-only descriptor
func WriteOnly(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWriteOnly,
		Want:   name,
		Detail: "descriptor has no read direction",
	}
}

// OutOfRange reports a stack index outside the live stack
func OutOfRange(phase Phase, index, top int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("index %d outside stack of height %d", index, top),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Script wraps an error raised by the scripting engine
func Script(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseScript,
		Kind:   KindScriptError,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
