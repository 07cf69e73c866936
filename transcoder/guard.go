package transcoder

import (
	lua "github.com/yuin/gopher-lua"
)

// StackGuard records the stack height of a state so it can be restored later,
// discarding any slots pushed in between. It is the only component allowed to
// pop slots it did not push itself: conversions lean on it to keep scratch
// slots from leaking past the call boundary on any exit path.
//
// Guards nest: an inner guard restores to its own baseline, the outer one to
// its own. Restore is idempotent and never grows the stack.
type StackGuard struct {
	l   *lua.LState
	top int
}

// NewStackGuard captures the current stack height of l.
//
//	g := transcoder.NewStackGuard(l)
//	defer g.Restore()
func NewStackGuard(l *lua.LState) *StackGuard {
	return &StackGuard{l: l, top: l.GetTop()}
}

// Top returns the height recorded at capture time.
func (g *StackGuard) Top() int {
	return g.top
}

// Restore pops every slot above the recorded height. It is a no-op if the
// stack is already at or below the baseline.
func (g *StackGuard) Restore() {
	if g.l.GetTop() > g.top {
		g.l.SetTop(g.top)
	}
}
