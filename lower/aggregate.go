package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// array lowers `array`: lower each item (used); CreateArray(count = n).
func (l *Lowerer) array(n *ast.Node, used bool) ([]ir.Instruction, error) {
	var seq []ir.Instruction
	for _, item := range n.Children {
		s, err := l.Expr(item, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s...)
	}
	seq = append(seq, ir.CreateArray{Count: len(n.Children)})
	return finish(seq, used), nil
}

// hash lowers `hash`: require even item count, else OddHashItems; lower
// each item (used); CreateHash(count = n/2).
func (l *Lowerer) hash(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children)%2 != 0 {
		return nil, &OddHashItemsError{Count: len(n.Children)}
	}
	var seq []ir.Instruction
	for _, item := range n.Children {
		s, err := l.Expr(item, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s...)
	}
	seq = append(seq, ir.CreateHash{Count: len(n.Children) / 2})
	return finish(seq, used), nil
}
