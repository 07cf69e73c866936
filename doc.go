// Package luaruntime provides typed marshalling between Go and embedded Lua.
//
// The library is built on the gopher-lua engine and concentrates everything
// that crosses the Go/Lua boundary into one conversion layer, so that
// higher-level bindings never touch the stack by hand.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	lua-runtime/         Root package with aliases for the core surface
//	├── transcoder/      Typed conversion between Go values and stack slots
//	├── errors/          Structured error types for diagnostics
//	└── cmd/run/         Script runner and interactive inspector
//
// # Quick Start
//
// Push a Go value, read it back:
//
//	l := lua.NewState()
//	defer l.Close()
//
//	transcoder.Int.Push(l, 42)
//
//	var n int
//	if transcoder.Int.To(l, -1, &n) {
//	    fmt.Println(n) // 42
//	}
//
// Containers compose from element codecs:
//
//	scores := transcoder.MapOf(transcoder.String, transcoder.Float64)
//	scores.Push(l, map[string]float64{"alice": 9.5})
//
//	var out map[string]float64
//	ok := scores.To(l, -1, &out)
//
// Failed reads return false and leave the destination untouched; nothing is
// raised across the boundary. See the transcoder package for the full
// conversion and coercion contract.
package luaruntime
