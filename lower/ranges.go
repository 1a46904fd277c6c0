package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// dotRange lowers `dot2`/`dot3`: lower ending (or nil) used; lower
// beginning (or nil) used; PushRange(exclude_end = tag is dot3).
func (l *Lowerer) dotRange(n *ast.Node, used bool, excludeEnd bool) ([]ir.Instruction, error) {
	var beginN, endN *ast.Node
	if len(n.Children) > 0 {
		beginN = n.Children[0]
	}
	if len(n.Children) > 1 {
		endN = n.Children[1]
	}

	var seq []ir.Instruction
	endSeq, err := l.branch(endN, true)
	if err != nil {
		return nil, err
	}
	seq = append(seq, endSeq...)
	beginSeq, err := l.branch(beginN, true)
	if err != nil {
		return nil, err
	}
	seq = append(seq, beginSeq...)
	seq = append(seq, ir.PushRange{ExcludeEnd: excludeEnd})
	return finish(seq, used), nil
}
