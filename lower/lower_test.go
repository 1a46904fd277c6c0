package lower_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
	"github.com/emberlang/emberc/lower"
)

// lowerText parses the textual AST notation and lowers it, returning the
// instruction stream rendered via ir.Sexpr for easy comparison against the
// expected parenthesized notation.
func lowerText(t *testing.T, src string, used bool) string {
	t.Helper()
	root, err := ast.Parse(src)
	be.Err(t, err, nil)
	instrs, err := lower.Lower(root, used)
	be.Err(t, err, nil)
	return ir.Sexpr(instrs)
}

func TestLower_LiteralPushesWhenUsed(t *testing.T) {
	got := lowerText(t, `block(lit 42)`, true)
	be.Equal(t, got, "(PushInt 42)")
}

func TestLower_LiteralElidedWhenUnused(t *testing.T) {
	root, err := ast.Parse(`block(lit 42)`)
	be.Err(t, err, nil)
	instrs, err := lower.Lower(root, false)
	be.Err(t, err, nil)
	be.Equal(t, len(instrs), 0)
}

func TestLower_LasgnSetsThenLeavesNoValueWhenUnused(t *testing.T) {
	got := lowerText(t, `block(lasgn sym:a (lit 1))`, false)
	be.Equal(t, got, "(PushInt 1)\n(VariableSet \"a\" local_only=false)")
}

func TestLower_IfBranchesOnCondition(t *testing.T) {
	got := lowerText(t, `block(if true (lit 1) (lit 2))`, true)
	want := strings.Join([]string{
		"(PushTrue)",
		"(If)",
		"(PushInt 1)",
		"(Else if)",
		"(PushInt 2)",
		"(End if)",
	}, "\n")
	be.Equal(t, got, want)
}

func TestLower_AndShortCircuitsWhenUnused(t *testing.T) {
	got := lowerText(t, `block(and (lvar sym:x) (lvar sym:y))`, false)
	want := strings.Join([]string{
		`(VariableGet "x")`,
		"(Dup)",
		"(If)",
		"(Pop)",
		`(VariableGet "y")`,
		"(Else if)",
		"(End if)",
		"(Pop)",
	}, "\n")
	be.Equal(t, got, want)
}

func TestLower_CallDropsResultWhenUnused(t *testing.T) {
	got := lowerText(t, `block(call(nil :puts (str "hi")))`, false)
	want := strings.Join([]string{
		`(PushString "hi" 2)`,
		"(PushArgc 1)",
		"(PushSelf)",
		`(Send "puts" self=true block=false)`,
		"(Pop)",
	}, "\n")
	be.Equal(t, got, want)
}

func TestLower_UnexpectedRoot(t *testing.T) {
	root, err := ast.Parse(`(lit 42)`)
	be.Err(t, err, nil)
	_, lowerErr := lower.Lower(root, true)
	be.True(t, lowerErr != nil)
	var target *lower.UnexpectedRootError
	be.True(t, errors.As(lowerErr, &target))
}

func TestLower_UnknownConstruct(t *testing.T) {
	root, err := ast.Parse(`block(frobnicate())`)
	be.Err(t, err, nil)
	_, lowerErr := lower.Lower(root, true)
	be.True(t, lowerErr != nil)
	be.True(t, strings.Contains(lowerErr.Error(), `"frobnicate"`))
}

func TestLower_OddHashItems(t *testing.T) {
	root, err := ast.Parse(`block(hash (lit 1))`)
	be.Err(t, err, nil)
	_, lowerErr := lower.Lower(root, true)
	be.True(t, lowerErr != nil)
	be.True(t, strings.Contains(lowerErr.Error(), "odd item count"))
}

func TestLower_DefnPushesNilWhenUsed(t *testing.T) {
	got := lowerText(t, `block(defn sym:greet (args) (lit 1))`, true)
	be.True(t, strings.HasSuffix(got, "(PushNil)"))
}

func TestLower_SimpleFormals(t *testing.T) {
	got := lowerText(t, `block(defn sym:f (args sym:a sym:b) (lvar sym:a))`, false)
	be.True(t, strings.Contains(got, "(PushArg 0)"))
	be.True(t, strings.Contains(got, `(VariableSet "a" local_only=true)`))
	be.True(t, strings.Contains(got, "(PushArg 1)"))
	be.True(t, strings.Contains(got, `(VariableSet "b" local_only=true)`))
}

func TestLower_PureProducerElidedWhenUnused(t *testing.T) {
	root, err := ast.Parse(`block(const sym:Foo)`)
	be.Err(t, err, nil)
	instrs, lowerErr := lower.Lower(root, false)
	be.Err(t, lowerErr, nil)
	be.Equal(t, len(instrs), 0)
}

func TestLower_CaseWithSubject(t *testing.T) {
	got := lowerText(t, `block(case (lit 1) (when (array (lit 1)) (str "one")) (str "other"))`, true)
	be.True(t, strings.Contains(got, `Send "===" self=false`))
	be.True(t, strings.HasSuffix(got, "(Swap)\n(Pop)"))
}

func TestLower_CaseWithoutSubject(t *testing.T) {
	got := lowerText(t, `block(case (when (array true) (str "yes")) (str "no"))`, true)
	be.True(t, strings.Contains(got, "(If)"))
	be.True(t, strings.Contains(got, `(PushString "yes" 3)`))
}

func TestLower_CaseWithSubjectNoWhens(t *testing.T) {
	// Zero whens reduces the whole node to just the else branch: the
	// subject is never evaluated, so its side effects never run.
	got := lowerText(t, `block(case (call nil :risky) (str "other"))`, true)
	be.Equal(t, got, `(PushString "other" 5)`)
}
