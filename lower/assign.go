package lower

import (
	"fmt"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// assign lowers lasgn/iasgn/gasgn: lower value (used), then the matching
// Set instruction. If used = true, append the matching Get so the
// assigned value is the expression's result — Set consumes its operand,
// so a subsequent read reproduces the value without needing a
// duplicating variant.
func (l *Lowerer) assign(n *ast.Node, set, get ir.Instruction, used bool) ([]ir.Instruction, error) {
	if len(n.Children) != 1 {
		return nil, fmt.Errorf("lower: %s node expects exactly one value child", n.Tag)
	}
	valSeq, err := l.Expr(n.Children[0], true)
	if err != nil {
		return nil, err
	}
	seq := append(valSeq, set)
	if used {
		seq = append(seq, get)
	}
	return seq, nil
}

// cdecl lowers a constant declaration: lower value (used); resolve the
// owner; emit the owner-prep instruction, then ConstSet(name).
//
// ConstSet consumes (value, owner) and leaves nothing, so there is no
// ConstGet-style instruction to reproduce the assigned value the way
// lasgn/iasgn/gasgn do. When used = true this lowering instead Dups the
// value immediately after evaluating it, before the owner-prep sequence
// runs: ConstSet then consumes the duplicate and the owner, leaving the
// original copy as the expression's result. Recorded in DESIGN.md.
func (l *Lowerer) cdecl(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) != 2 {
		return nil, fmt.Errorf("lower: cdecl node expects [owner-slot, value] children")
	}
	ownerSlot, valueNode := n.Children[0], n.Children[1]

	valSeq, err := l.Expr(valueNode, true)
	if err != nil {
		return nil, err
	}
	leaf, ownerSeq, err := l.resolveConstantOwner(ownerSlot)
	if err != nil {
		return nil, err
	}

	seq := valSeq
	if used {
		seq = append(seq, ir.Dup{})
	}
	seq = append(seq, ownerSeq...)
	seq = append(seq, ir.ConstSet{Name: leaf})
	return seq, nil
}
