// Package rules compiles Starlark scripts into droppable accept rules.
//
// A rule script defines a function named accept taking the dragged node and
// its label:
//
//	def accept(node, label):
//	    return label == "card" and node["w"] <= 60
//
// node is a dict with the keys name, x, y, w and h (local position and size).
// The function's result is interpreted by Starlark truthiness.
package rules

import (
	"fmt"
	"io"
	"os"

	"go.starlark.net/starlark"

	"github.com/phanxgames/dnd"
)

// Rule is a compiled accept script. It is not safe for concurrent use; call
// it from the host's update goroutine like the rest of dnd.
type Rule struct {
	name   string
	thread *starlark.Thread
	fn     starlark.Callable
	err    error
}

// Compile executes src as a Starlark module named name and binds its accept
// function. src may be a string, []byte or io.Reader, as for
// starlark.ExecFile.
func Compile(name string, src any) (*Rule, error) {
	return compile(name, src, os.Stderr)
}

// CompileFile compiles the script at path.
func CompileFile(path string) (*Rule, error) {
	return compile(path, nil, os.Stderr)
}

func compile(name string, src any, out io.Writer) (*Rule, error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintf(out, "[rules] %s: %s\n", name, msg)
		},
	}
	globals, err := starlark.ExecFile(thread, name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("rules: compile %s: %w", name, err)
	}
	v, ok := globals["accept"]
	if !ok {
		return nil, fmt.Errorf("rules: compile %s: no accept function", name)
	}
	fn, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("rules: compile %s: accept is a %s, not a function", name, v.Type())
	}
	return &Rule{name: name, thread: thread, fn: fn}, nil
}

// Name returns the module name the rule was compiled under.
func (r *Rule) Name() string { return r.name }

// Eval calls the script's accept function for a draggable.
func (r *Rule) Eval(n dnd.Node, label string) (bool, error) {
	args := starlark.Tuple{nodeDict(n), starlark.String(label)}
	v, err := starlark.Call(r.thread, r.fn, args, nil)
	if err != nil {
		return false, fmt.Errorf("rules: %s: %w", r.name, err)
	}
	return bool(v.Truth()), nil
}

// Accept returns an accept rule backed by the script. A script error rejects
// the draggable and is kept for Err.
func (r *Rule) Accept() dnd.Accept {
	return dnd.AcceptFunc(func(n dnd.Node, label string) bool {
		ok, err := r.Eval(n, label)
		if err != nil {
			r.err = err
			return false
		}
		return ok
	})
}

// Err returns the most recent script error raised through Accept, or nil.
func (r *Rule) Err() error { return r.err }

func nodeDict(n dnd.Node) *starlark.Dict {
	d := starlark.NewDict(5)
	if n == nil {
		return d
	}
	pos, size := n.Position(), n.Size()
	// SetKey only fails on unhashable keys or frozen dicts.
	_ = d.SetKey(starlark.String("name"), starlark.String(n.Name()))
	_ = d.SetKey(starlark.String("x"), starlark.Float(pos.X))
	_ = d.SetKey(starlark.String("y"), starlark.Float(pos.Y))
	_ = d.SetKey(starlark.String("w"), starlark.Float(size.X))
	_ = d.SetKey(starlark.String("h"), starlark.Float(size.Y))
	return d
}
