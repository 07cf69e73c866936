package luaruntime

import (
	"github.com/wippyai/lua-runtime/transcoder"
)

// Aliases for the core conversion surface, for callers that only marshal
// values and do not need the rest of the transcoder package.

type Codec[T any] = transcoder.Codec[T]

type StackGuard = transcoder.StackGuard

type Tag = transcoder.Tag

type Nothing = transcoder.Nothing
