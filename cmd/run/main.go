package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/wippyai/lua-runtime/errors"
	"github.com/wippyai/lua-runtime/transcoder"
)

func main() {
	var (
		scriptFile  = flag.String("script", "", "Path to Lua script")
		funcName    = flag.String("func", "", "Global function to call (optional)")
		funcArgs    = flag.String("args", "", "Arguments to pass (comma-separated)")
		globalName  = flag.String("global", "", "Global value to read and print")
		list        = flag.Bool("list", false, "List globals defined by the script and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -script <file.lua> [-func name] [-args a,b,c]")
		fmt.Fprintln(os.Stderr, "       run -script <file.lua> -global name")
		fmt.Fprintln(os.Stderr, "       run -script <file.lua> -list")
		fmt.Fprintln(os.Stderr, "       run -script <file.lua> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*scriptFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scriptFile, *funcName, *funcArgs, *globalName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scriptFile, funcName, funcArgs, globalName string, listOnly bool) error {
	l := lua.NewState()
	defer l.Close()

	// globals present before the script runs are the stdlib, not the script's
	baseline := globalNames(l)

	if err := l.DoFile(scriptFile); err != nil {
		return errors.Script("load "+scriptFile, err)
	}

	defined := scriptGlobals(l, baseline)
	fmt.Printf("Script: %s\n", scriptFile)
	fmt.Printf("Globals defined: %d\n", len(defined))

	if listOnly || (funcName == "" && globalName == "") {
		fmt.Printf("\nGlobals:\n")
		for _, g := range defined {
			fmt.Printf("  %-20s %s\n", g.name, g.typeName)
		}
		return nil
	}

	if globalName != "" {
		g := transcoder.NewStackGuard(l)
		defer g.Restore()
		v := l.GetGlobal(globalName)
		if v == lua.LNil {
			return errors.NotFound(errors.PhaseRuntime, "global", globalName)
		}
		l.Push(v)
		fmt.Printf("\n%s = %s\n", globalName, formatSlot(l, -1))
		return nil
	}

	results, err := callGlobal(l, funcName, splitArgs(funcArgs))
	if err != nil {
		return err
	}
	fmt.Printf("\n%s(%s)\n", funcName, funcArgs)
	if len(results) == 0 {
		fmt.Println("No results.")
	}
	for i, r := range results {
		fmt.Printf("Result %d: %s\n", i+1, r)
	}
	return nil
}

type globalInfo struct {
	name     string
	typeName string
	callable bool
}

// globalNames snapshots the names bound in the globals table.
func globalNames(l *lua.LState) map[string]bool {
	names := make(map[string]bool)
	key := lua.LValue(lua.LNil)
	for {
		k, _ := l.G.Global.Next(key)
		if k == lua.LNil {
			break
		}
		if s, ok := k.(lua.LString); ok {
			names[string(s)] = true
		}
		key = k
	}
	return names
}

// scriptGlobals lists globals the script added over the baseline, sorted.
func scriptGlobals(l *lua.LState, baseline map[string]bool) []globalInfo {
	g := transcoder.NewStackGuard(l)
	defer g.Restore()

	var defined []globalInfo
	key := lua.LValue(lua.LNil)
	for {
		k, v := l.G.Global.Next(key)
		if k == lua.LNil {
			break
		}
		if s, ok := k.(lua.LString); ok && !baseline[string(s)] {
			l.Push(v)
			defined = append(defined, globalInfo{
				name:     string(s),
				typeName: transcoder.TypeNameOf(l, -1),
				callable: transcoder.TypeOf(l, -1) == transcoder.TagFunction,
			})
			g.Restore()
		}
		key = k
	}
	sort.Slice(defined, func(i, j int) bool { return defined[i].name < defined[j].name })
	return defined
}

// callGlobal pushes the named function and the parsed arguments, calls it
// with unbounded results, and formats whatever came back.
func callGlobal(l *lua.LState, name string, args []string) ([]string, error) {
	fn := l.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil, errors.NotFound(errors.PhaseRuntime, "function", name)
	}

	g := transcoder.NewStackGuard(l)
	defer g.Restore()

	l.Push(fn)
	for _, a := range args {
		pushArg(l, a)
	}
	if err := l.PCall(len(args), lua.MultRet, nil); err != nil {
		return nil, errors.Script("call "+name, err)
	}

	var results []string
	for i := g.Top() + 1; i <= l.GetTop(); i++ {
		results = append(results, formatSlot(l, i))
	}
	return results, nil
}

// pushArg pushes a CLI argument through the codec whose type it spells:
// booleans and numbers go over typed, everything else as a string.
func pushArg(l *lua.LState, arg string) {
	switch {
	case arg == "true" || arg == "false":
		transcoder.Bool.Push(l, arg == "true")
	default:
		if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
			transcoder.Int64.Push(l, i)
			return
		}
		if f, err := strconv.ParseFloat(arg, 64); err == nil {
			transcoder.Float64.Push(l, f)
			return
		}
		transcoder.String.Push(l, arg)
	}
}

// formatSlot renders the slot at index through the conversion layer,
// preferring the most specific codec that accepts it.
func formatSlot(l *lua.LState, index int) string {
	tag := transcoder.TypeOf(l, index)
	switch tag {
	case transcoder.TagNumber:
		var i int64
		if transcoder.Int64.To(l, index, &i) {
			return fmt.Sprintf("%d (integer)", i)
		}
		var f float64
		if transcoder.Float64.To(l, index, &f) {
			return fmt.Sprintf("%g (number)", f)
		}
	case transcoder.TagBool:
		var b bool
		if transcoder.Bool.To(l, index, &b) {
			return fmt.Sprintf("%t (boolean)", b)
		}
	case transcoder.TagString:
		var s string
		if transcoder.String.To(l, index, &s) {
			return fmt.Sprintf("%q (string)", s)
		}
	case transcoder.TagTable:
		var seq []string
		if transcoder.SliceOf(transcoder.String).To(l, index, &seq) {
			return fmt.Sprintf("{%s} (sequence, %d elements)", strings.Join(seq, ", "), len(seq))
		}
		var m map[string]string
		if transcoder.MapOf(transcoder.String, transcoder.String).To(l, index, &m) {
			pairs := make([]string, 0, len(m))
			for k, v := range m {
				pairs = append(pairs, k+"="+v)
			}
			sort.Strings(pairs)
			return fmt.Sprintf("{%s} (table, %d pairs)", strings.Join(pairs, ", "), len(m))
		}
		return "(table)"
	}
	return "(" + tag.String() + ")"
}

func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
