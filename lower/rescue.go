package lower

import (
	"fmt"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// rescueExpr lowers `rescue(body, resbody…, ensure?)`. This lowering
// brackets the protected body in a BeginRescue/End(rescue) region and,
// between them, emits a handler ladder structurally mirroring case's own
// ===-based matching, the only dispatch primitive available: each
// resbody's exception classes are tested against
// PushCurrentException in turn, the first match binds the handler's
// variable (if any) and runs its body, and falling through every handler
// re-raises via RaiseCurrent. An ensure tail, if present, is lowered after
// End(rescue) with used = false, since its only purpose is the side effect
// of always running, never a value. Recorded in DESIGN.md.
func (l *Lowerer) rescueExpr(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) < 1 {
		return nil, fmt.Errorf("lower: rescue node expects at least a body child")
	}
	bodyNode := n.Children[0]

	var handlers []*ast.Node
	var ensureNode *ast.Node
	for _, c := range n.Children[1:] {
		if c.Tag == ast.TagEnsure {
			ensureNode = c
			continue
		}
		handlers = append(handlers, c)
	}

	bodySeq, err := l.Expr(bodyNode, used)
	if err != nil {
		return nil, err
	}

	seq := []ir.Instruction{ir.BeginRescue{}}
	seq = append(seq, bodySeq...)
	if len(handlers) > 0 {
		chainSeq, err := l.handlerChain(handlers, 0, used)
		if err != nil {
			return nil, err
		}
		seq = append(seq, ir.PushCurrentException{})
		seq = append(seq, chainSeq...)
	}
	seq = append(seq, ir.End{Tag: ir.ScopeRescue})

	if ensureNode != nil {
		ensureSeq, err := l.body(ensureNode.Children, false)
		if err != nil {
			return nil, err
		}
		seq = append(seq, ensureSeq...)
	}
	return seq, nil
}

// handlerChain builds the recursive handler ladder described above.
// Precondition: the current exception sits on top of the stack (pushed
// once by the caller, or carried down from an outer handler's Else
// branch). Postcondition on the path that falls all the way through: the
// exception is consumed by Pop immediately before RaiseCurrent.
func (l *Lowerer) handlerChain(handlers []*ast.Node, idx int, used bool) ([]ir.Instruction, error) {
	if idx == len(handlers) {
		return []ir.Instruction{ir.Pop{}, ir.RaiseCurrent{}}, nil
	}
	h := handlers[idx]
	if len(h.Children) != 2 {
		return nil, fmt.Errorf("lower: resbody node expects [exceptionClasses, body] children")
	}
	classesNode, bodyNode := h.Children[0], h.Children[1]

	var seq []ir.Instruction
	for _, classExpr := range classesNode.Children {
		classSeq, err := l.Expr(classExpr, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, classSeq...)
		seq = append(seq,
			ir.PushArgc{Count: 1},
			ir.DupRel{Depth: 2},
			ir.Send{Message: "===", ReceiverIsSelf: false, WithBlock: false},
			ir.If{},
			ir.PushTrue{},
			ir.Else{Tag: ir.ScopeIf},
		)
	}
	seq = append(seq, ir.PushFalse{})
	for range classesNode.Children {
		seq = append(seq, ir.End{Tag: ir.ScopeIf})
	}

	var trueSeq []ir.Instruction
	if h.Name == "" {
		trueSeq = append(trueSeq, ir.PopException{})
	} else {
		trueSeq = append(trueSeq, ir.VariableSet{Name: h.Name, LocalOnly: false})
	}
	handlerBodySeq, err := l.Expr(bodyNode, used)
	if err != nil {
		return nil, err
	}
	trueSeq = append(trueSeq, handlerBodySeq...)

	falseSeq, err := l.handlerChain(handlers, idx+1, used)
	if err != nil {
		return nil, err
	}

	seq = append(seq, ir.If{})
	seq = append(seq, trueSeq...)
	seq = append(seq, ir.Else{Tag: ir.ScopeIf})
	seq = append(seq, falseSeq...)
	seq = append(seq, ir.End{Tag: ir.ScopeIf})
	return seq, nil
}
