package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// body lowers an ordered sequence of expressions under the
// last-expression-is-used discipline: all but the last are lowered with
// used = false; the last is lowered with the inherited used. An empty
// body lowers as `nil` with the inherited used.
func (l *Lowerer) body(exprs []*ast.Node, used bool) ([]ir.Instruction, error) {
	if len(exprs) == 0 {
		return l.leaf(ir.PushNil{}, used)
	}
	var seq []ir.Instruction
	last := len(exprs) - 1
	for i, e := range exprs {
		exprUsed := false
		if i == last {
			exprUsed = used
		}
		s, err := l.Expr(e, exprUsed)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s...)
	}
	return seq, nil
}
