package transcoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	lua "github.com/yuin/gopher-lua"
)

func TestSliceRoundTrip(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	codec := SliceOf(Int)

	tests := []struct {
		name string
		in   []int
	}{
		{"empty", []int{}},
		{"single", []int{7}},
		{"ten", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"negatives", []int{-1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := l.GetTop()
			codec.Push(l, tt.in)
			defer l.SetTop(top)

			if l.GetTop() != top+1 {
				t.Fatalf("Push changed stack by %d, want 1", l.GetTop()-top)
			}
			if TypeOf(l, -1) != TagTable {
				t.Fatalf("pushed %v, want table", TypeOf(l, -1))
			}

			var out []int
			if !codec.To(l, -1, &out) {
				t.Fatal("To failed")
			}
			if diff := cmp.Diff(tt.in, out); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			if l.GetTop() != top+1 {
				t.Errorf("To changed stack height")
			}
		})
	}
}

func TestSliceOfStrings(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	codec := SliceOf(String)
	in := []string{"a", "", "hello world"}

	codec.Push(l, in)
	defer l.Pop(1)

	var out []string
	if !codec.To(l, -1, &out) {
		t.Fatal("To failed")
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceRejectsNonSequence(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	codec := SliceOf(Int)

	tests := []struct {
		name   string
		script string
	}{
		{"gap in keys", "t = {}; t[1] = 10; t[3] = 30"},
		{"starts at zero", "t = {}; t[0] = 10; t[1] = 20"},
		{"string key mixed in", "t = {1, 2}; t.x = 3"},
		{"non-integral key", "t = {}; t[1.5] = 10"},
		{"only string keys", "t = {a = 1, b = 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.DoString(tt.script); err != nil {
				t.Fatalf("script failed: %v", err)
			}
			l.Push(l.GetGlobal("t"))
			defer l.Pop(1)

			out := []int{99}
			top := l.GetTop()
			if codec.To(l, -1, &out) {
				t.Fatal("To should reject a non-sequence table")
			}
			if len(out) != 1 || out[0] != 99 {
				t.Errorf("failed To wrote destination: %v", out)
			}
			if l.GetTop() != top {
				t.Errorf("failed To changed stack height")
			}
		})
	}
}

func TestSliceRejectsNonTable(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	l.Push(lua.LNumber(42))
	defer l.Pop(1)

	var out []int
	if SliceOf(Int).To(l, -1, &out) {
		t.Error("To should reject a number slot")
	}
}

func TestSliceElementFailureDiscards(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	// third element fails exact integer coercion
	if err := l.DoString("t = {1, 2, 2.5, 4}"); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	l.Push(l.GetGlobal("t"))
	defer l.Pop(1)

	out := []int{7}
	if SliceOf(Int).To(l, -1, &out) {
		t.Fatal("To should fail on a bad element")
	}
	if len(out) != 1 || out[0] != 7 {
		t.Errorf("partial result leaked into destination: %v", out)
	}
}

func TestNestedSlices(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	codec := SliceOf(SliceOf(Int))
	in := [][]int{{1, 2}, {}, {3}}

	top := l.GetTop()
	codec.Push(l, in)
	defer l.SetTop(top)

	var out [][]int
	if !codec.To(l, -1, &out) {
		t.Fatal("To failed")
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if l.GetTop() != top+1 {
		t.Errorf("stack height drifted: %d, want %d", l.GetTop(), top+1)
	}
}

func TestMapRoundTrip(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	t.Run("string to int", func(t *testing.T) {
		codec := MapOf(String, Int)
		in := map[string]int{"a": 1, "b": 2, "c": 3}

		top := l.GetTop()
		codec.Push(l, in)
		defer l.SetTop(top)

		var out map[string]int
		if !codec.To(l, -1, &out) {
			t.Fatal("To failed")
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("int to string", func(t *testing.T) {
		codec := MapOf(Int, String)
		in := map[int]string{1: "one", 10: "ten", -5: "minus five"}

		codec.Push(l, in)
		defer l.Pop(1)

		var out map[int]string
		if !codec.To(l, -1, &out) {
			t.Fatal("To failed")
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		codec := MapOf(String, Int)
		codec.Push(l, map[string]int{})
		defer l.Pop(1)

		var out map[string]int
		if !codec.To(l, -1, &out) {
			t.Fatal("To failed")
		}
		if len(out) != 0 {
			t.Errorf("out = %v, want empty", out)
		}
	})
}

func TestMapKeyFailureDiscards(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	// boolean key cannot convert to string under the inherited policy
	if err := l.DoString("t = {a = 1}; t[true] = 2"); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	l.Push(l.GetGlobal("t"))
	defer l.Pop(1)

	out := map[string]int{"keep": 9}
	if MapOf(String, Int).To(l, -1, &out) {
		t.Fatal("To should fail on an inconvertible key")
	}
	if len(out) != 1 || out["keep"] != 9 {
		t.Errorf("partial result leaked into destination: %v", out)
	}
}

func TestMapValueFailureDiscards(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	if err := l.DoString("t = {a = 1, b = 'not a number'}"); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	l.Push(l.GetGlobal("t"))
	defer l.Pop(1)

	var out map[string]int
	top := l.GetTop()
	if MapOf(String, Int).To(l, -1, &out) {
		t.Fatal("To should fail on an inconvertible value")
	}
	if out != nil {
		t.Errorf("destination written on failure: %v", out)
	}
	if l.GetTop() != top {
		t.Errorf("failed To changed stack height")
	}
}

func TestMapNumericKeysCoerceToString(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	// inherited coercion applies to keys too: numbers read as strings
	if err := l.DoString("t = {}; t[1] = 'one'"); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	l.Push(l.GetGlobal("t"))
	defer l.Pop(1)

	var out map[string]string
	if !MapOf(String, String).To(l, -1, &out) {
		t.Fatal("To failed")
	}
	want := map[string]string{"1": "one"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapReadsSequenceTable(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	// a sequence is also a valid mapping with integer keys
	SliceOf(String).Push(l, []string{"x", "y"})
	defer l.Pop(1)

	var out map[int]string
	if !MapOf(Int, String).To(l, -1, &out) {
		t.Fatal("To failed")
	}
	want := map[int]string{1: "x", 2: "y"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
