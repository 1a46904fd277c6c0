package lower

import (
	"fmt"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// and lowers `and(lhs, rhs)`: if lhs is truthy, the result is rhs;
// otherwise it's lhs.
func (l *Lowerer) and(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) != 2 {
		return nil, fmt.Errorf("lower: and node expects [lhs, rhs] children")
	}
	lhsSeq, err := l.Expr(n.Children[0], true)
	if err != nil {
		return nil, err
	}
	rhsSeq, err := l.Expr(n.Children[1], true)
	if err != nil {
		return nil, err
	}
	return finish(andPattern(lhsSeq, rhsSeq), used), nil
}

// or lowers `or(lhs, rhs)`: if lhs is truthy, the result is lhs; otherwise
// it's rhs.
func (l *Lowerer) or(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) != 2 {
		return nil, fmt.Errorf("lower: or node expects [lhs, rhs] children")
	}
	lhsSeq, err := l.Expr(n.Children[0], true)
	if err != nil {
		return nil, err
	}
	rhsSeq, err := l.Expr(n.Children[1], true)
	if err != nil {
		return nil, err
	}
	return finish(orPattern(lhsSeq, rhsSeq), used), nil
}

// andPattern builds lhs, Dup, If, Pop, rhs, Else(if), End(if): truthy ->
// rhs, falsy -> lhs (the Dup'd copy survives in the falsy branch
// untouched).
func andPattern(lhsSeq, rhsSeq []ir.Instruction) []ir.Instruction {
	seq := append([]ir.Instruction{}, lhsSeq...)
	seq = append(seq, ir.Dup{}, ir.If{}, ir.Pop{})
	seq = append(seq, rhsSeq...)
	seq = append(seq, ir.Else{Tag: ir.ScopeIf}, ir.End{Tag: ir.ScopeIf})
	return seq
}

// orPattern builds lhs, Dup, If, Else(if), Pop, rhs, End(if): truthy ->
// lhs, falsy -> rhs. Also the shape optarg default-fallback lowering
// reuses: a fetched formal value stands in for lhs, its default
// expression for rhs.
func orPattern(lhsSeq, rhsSeq []ir.Instruction) []ir.Instruction {
	seq := append([]ir.Instruction{}, lhsSeq...)
	seq = append(seq, ir.Dup{}, ir.If{}, ir.Else{Tag: ir.ScopeIf}, ir.Pop{})
	seq = append(seq, rhsSeq...)
	seq = append(seq, ir.End{Tag: ir.ScopeIf})
	return seq
}
