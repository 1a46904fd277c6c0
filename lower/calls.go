package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// call lowers `call(receiver, message, args…)`: lower each arg (used);
// PushArgc(n); if receiver absent, PushSelf; else lower receiver (used);
// Send(message, receiver_is_self, with_block).
func (l *Lowerer) call(n *ast.Node, used bool) ([]ir.Instruction, error) {
	var receiver *ast.Node
	args := n.Children
	if n.HasReceiver {
		receiver, args = n.Children[0], n.Children[1:]
	}

	var seq []ir.Instruction
	for _, a := range args {
		s, err := l.Expr(a, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s...)
	}
	seq = append(seq, ir.PushArgc{Count: len(args)})

	if receiver == nil {
		seq = append(seq, ir.PushSelf{})
	} else {
		rs, err := l.Expr(receiver, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, rs...)
	}
	seq = append(seq, ir.Send{Message: n.Name, ReceiverIsSelf: receiver == nil, WithBlock: n.WithBlock})
	return finish(seq, used), nil
}

// iter lowers `iter(call, args, body)`: DefineBlock(arity); lower args as
// formals; lower body(used); End(define_block); then lower the embedded
// call with with_block = true. The body is lowered with the
// iter node's own `used` flag — not forced to true the way a defn/class
// body is; see DESIGN.md for why this is kept as a distinct rule rather
// than unified with defn/class's.
func (l *Lowerer) iter(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) < 2 {
		return nil, &UnexpectedIterCallError{Tag: "<missing>"}
	}
	callNode, argsNode, bodyExprs := n.Children[0], n.Children[1], n.Children[2:]
	if callNode.Tag != ast.TagCall {
		return nil, &UnexpectedIterCallError{Tag: string(callNode.Tag)}
	}

	formalsSeq, err := l.formals(argsNode)
	if err != nil {
		return nil, err
	}
	bodySeq, err := l.body(bodyExprs, used)
	if err != nil {
		return nil, err
	}

	seq := []ir.Instruction{ir.DefineBlock{Arity: len(argsNode.Children)}}
	seq = append(seq, formalsSeq...)
	seq = append(seq, bodySeq...)
	seq = append(seq, ir.End{Tag: ir.ScopeDefineBlock})

	withBlockCall := *callNode
	withBlockCall.WithBlock = true
	callSeq, err := l.call(&withBlockCall, used)
	if err != nil {
		return nil, err
	}
	return append(seq, callSeq...), nil
}

// yieldExpr lowers `yield(args…)`: lower args (used); PushArgc(n); Yield.
func (l *Lowerer) yieldExpr(n *ast.Node, used bool) ([]ir.Instruction, error) {
	var seq []ir.Instruction
	for _, a := range n.Children {
		s, err := l.Expr(a, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s...)
	}
	seq = append(seq, ir.PushArgc{Count: len(n.Children)}, ir.Yield{})
	return finish(seq, used), nil
}
