package transcoder

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	rterrors "github.com/wippyai/lua-runtime/errors"
)

func TestCheckSuccess(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	l.Push(lua.LNumber(42))
	defer l.Pop(1)

	v, err := Check(l, -1, Int)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if v != 42 {
		t.Errorf("v = %d, want 42", v)
	}
}

func TestCheckTypeMismatch(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	l.Push(lua.LString("nope"))
	defer l.Pop(1)

	_, err := Check(l, -1, Bool)
	if err == nil {
		t.Fatal("Check should fail reading a string as boolean")
	}

	e, ok := err.(*rterrors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Kind != rterrors.KindTypeMismatch {
		t.Errorf("Kind = %v, want KindTypeMismatch", e.Kind)
	}
	msg := err.Error()
	if !strings.Contains(msg, "boolean") {
		t.Errorf("message %q should name the wanted type", msg)
	}
	if !strings.Contains(msg, "string") {
		t.Errorf("message %q should name the found type", msg)
	}
}

func TestCheckOutOfRange(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	_, err := Check(l, 3, Int)
	if err == nil {
		t.Fatal("Check should fail past the stack top")
	}
	e, ok := err.(*rterrors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Kind != rterrors.KindOutOfRange {
		t.Errorf("Kind = %v, want KindOutOfRange", e.Kind)
	}
}

func TestCheckWriteOnly(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	l.Push(lua.LNil)
	defer l.Pop(1)

	_, err := Check(l, -1, Nil)
	if err == nil {
		t.Fatal("Check should refuse a write-only codec")
	}
	e, ok := err.(*rterrors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Kind != rterrors.KindWriteOnly {
		t.Errorf("Kind = %v, want KindWriteOnly", e.Kind)
	}
}

func TestCheckContainerDiagnostics(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	t.Run("not a table", func(t *testing.T) {
		l.Push(lua.LNumber(42))
		defer l.Pop(1)

		_, err := Check(l, -1, SliceOf(Int))
		e, ok := err.(*rterrors.Error)
		if !ok {
			t.Fatalf("error type = %T, want *errors.Error", err)
		}
		if e.Kind != rterrors.KindNotTable {
			t.Errorf("Kind = %v, want KindNotTable", e.Kind)
		}
		if !strings.Contains(err.Error(), "got number") {
			t.Errorf("message %q should name the dynamic type", err.Error())
		}
	})

	t.Run("sequence gap", func(t *testing.T) {
		if err := l.DoString("t = {}; t[1] = 10; t[3] = 30"); err != nil {
			t.Fatalf("script failed: %v", err)
		}
		l.Push(l.GetGlobal("t"))
		defer l.Pop(1)

		_, err := Check(l, -1, SliceOf(Int))
		e, ok := err.(*rterrors.Error)
		if !ok {
			t.Fatalf("error type = %T, want *errors.Error", err)
		}
		if e.Kind != rterrors.KindBadSequenceKey {
			t.Errorf("Kind = %v, want KindBadSequenceKey", e.Kind)
		}
	})

	t.Run("bad element", func(t *testing.T) {
		if err := l.DoString("t = {1, 2, 'three'}"); err != nil {
			t.Fatalf("script failed: %v", err)
		}
		l.Push(l.GetGlobal("t"))
		defer l.Pop(1)

		_, err := Check(l, -1, SliceOf(Int))
		e, ok := err.(*rterrors.Error)
		if !ok {
			t.Fatalf("error type = %T, want *errors.Error", err)
		}
		if e.Kind != rterrors.KindElement {
			t.Errorf("Kind = %v, want KindElement", e.Kind)
		}
		msg := err.Error()
		if !strings.Contains(msg, "element 3") {
			t.Errorf("message %q should name the element position", msg)
		}
		if !strings.Contains(msg, "integer") {
			t.Errorf("message %q should name the wanted element type", msg)
		}
	})

	t.Run("bad map value", func(t *testing.T) {
		if err := l.DoString("t = {a = true}"); err != nil {
			t.Fatalf("script failed: %v", err)
		}
		l.Push(l.GetGlobal("t"))
		defer l.Pop(1)

		_, err := Check(l, -1, MapOf(String, Int))
		e, ok := err.(*rterrors.Error)
		if !ok {
			t.Fatalf("error type = %T, want *errors.Error", err)
		}
		if e.Kind != rterrors.KindElement {
			t.Errorf("Kind = %v, want KindElement", e.Kind)
		}
		msg := err.Error()
		if !strings.Contains(msg, "want integer") || !strings.Contains(msg, "got boolean") {
			t.Errorf("message %q should name both types", msg)
		}
	})

	t.Run("success", func(t *testing.T) {
		SliceOf(Int).Push(l, []int{1, 2, 3})
		defer l.Pop(1)

		v, err := Check(l, -1, SliceOf(Int))
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if len(v) != 3 || v[2] != 3 {
			t.Errorf("v = %v, want [1 2 3]", v)
		}
	})
}

func TestCheckArgNamesPosition(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	l.Push(lua.LString("nope"))
	defer l.Pop(1)

	_, err := CheckArg(l, -1, Int, 2)
	if err == nil {
		t.Fatal("CheckArg should fail")
	}
	if !strings.Contains(err.Error(), "arg2") {
		t.Errorf("message %q should name the argument position", err.Error())
	}
}
