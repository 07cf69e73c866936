package transcoder

import (
	"strconv"

	lua "github.com/yuin/gopher-lua"

	"github.com/wippyai/lua-runtime/errors"
)

// Check reads the slot at index as c's type. Where To reports a bare
// success flag, Check turns a failure into a structured error naming the
// requested type and what was actually found, which is what function
// bindings surface to script authors.
func Check[T any](l *lua.LState, index int, c Codec[T]) (T, error) {
	var out T
	if !c.Readable() {
		return out, errors.WriteOnly(errors.PhaseRead, c.Name())
	}
	if TypeOf(l, index) == TagNone {
		return out, errors.OutOfRange(errors.PhaseRead, index, l.GetTop())
	}
	if c.check != nil {
		err := c.check(l, index, &out)
		return out, err
	}
	if c.To(l, index, &out) {
		return out, nil
	}
	return out, errors.TypeMismatch(errors.PhaseRead, nil, c.Name(), TypeNameOf(l, index))
}

// CheckArg is Check with argument-position context for call bindings: the
// error path names the offending argument.
func CheckArg[T any](l *lua.LState, index int, c Codec[T], arg int) (T, error) {
	v, err := Check(l, index, c)
	if e, ok := err.(*errors.Error); ok {
		e.Path = []string{"arg" + strconv.Itoa(arg)}
	}
	return v, err
}
