package lower_test

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestLower_SplatFormal(t *testing.T) {
	got := lowerText(t, `block(defn sym:f (args sym:a splat(sym:rest)) (lvar sym:rest))`, false)
	be.True(t, strings.Contains(got, "(PushArgs)"))
	be.True(t, strings.Contains(got, `(VariableSet "rest" local_only=true)`))
	be.True(t, strings.Contains(got, "(PushRange exclude_end=false)"))
}

func TestLower_AnonymousSplatFormal(t *testing.T) {
	got := lowerText(t, `block(defn sym:f (args sym:a splat()) (lvar sym:a))`, false)
	be.True(t, strings.Contains(got, "(PushRange exclude_end=false)"))
	be.True(t, strings.Contains(got, "(Pop)"))
}

func TestLower_OptArgFormal(t *testing.T) {
	got := lowerText(t, `block(defn sym:f (args optarg(sym:b (lit 10))) (lvar sym:b))`, false)
	be.True(t, strings.Contains(got, "(PushArgs)"))
	be.True(t, strings.Contains(got, "(PushInt 10)"))
	be.True(t, strings.Contains(got, `(VariableSet "b" local_only=true)`))
}

func TestLower_DestructureFormal(t *testing.T) {
	got := lowerText(t, `block(defn sym:f (args destructure(sym:a sym:b)) (lvar sym:a))`, false)
	be.True(t, strings.Contains(got, "(PushArgs)"))
	be.True(t, strings.Contains(got, `(VariableSet "a" local_only=true)`))
	be.True(t, strings.Contains(got, `(VariableSet "b" local_only=true)`))
}
