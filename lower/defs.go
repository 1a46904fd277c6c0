package lower

import (
	"fmt"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// defn lowers `defn(name, args, body…)`: DefineMethod(name, arity);
// formals (used=true); body (used=true for last, false for preceding);
// End(define_method).
//
// The scope markers bracket the whole definition with no net stack
// effect of their own — a definition is statement-shaped and exempt from
// the generic trailing-Pop rule. To keep invariant 1 (stack-effect
// soundness) holding for used = true callers anyway, this lowering
// pushes a PushNil after End — the same placeholder idiom used for
// absent then/else/case branches — rather than leaving used = true
// silently unsatisfied. Recorded in DESIGN.md.
func (l *Lowerer) defn(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) < 1 {
		return nil, fmt.Errorf("lower: defn node expects [args, body...] children")
	}
	argsNode, bodyExprs := n.Children[0], n.Children[1:]

	formalsSeq, err := l.formals(argsNode)
	if err != nil {
		return nil, err
	}
	bodySeq, err := l.body(bodyExprs, true)
	if err != nil {
		return nil, err
	}

	seq := []ir.Instruction{ir.DefineMethod{Name: n.Name, Arity: len(argsNode.Children)}}
	seq = append(seq, formalsSeq...)
	seq = append(seq, bodySeq...)
	seq = append(seq, ir.End{Tag: ir.ScopeDefineMethod})
	if used {
		seq = append(seq, ir.PushNil{})
	}
	return seq, nil
}

// class lowers `class(name, superclass, body…)`: if superclass present
// lower(used=true) else PushObjectClass; resolve owner and emit prep;
// DefineClass(name); body with last-used discipline; End(define_class).
//
// This AST representation stores a class's defined name as a plain
// string rather than a nested sym/colon2/colon3 node the way cdecl's
// owner slot does, so namespaced class definitions (`class Foo::Bar`)
// can't be expressed; resolveConstantOwner is still invoked (via an
// ast.Sym wrapper) so the atomic-name case it degenerates to is visibly
// the grounded path, not a bypass.
func (l *Lowerer) class(n *ast.Node, used bool) ([]ir.Instruction, error) {
	var superSeq []ir.Instruction
	var bodyExprs []*ast.Node
	if n.HasSuperclass {
		if len(n.Children) < 1 {
			return nil, fmt.Errorf("lower: class node declares a superclass but has no children")
		}
		s, err := l.Expr(n.Children[0], true)
		if err != nil {
			return nil, err
		}
		superSeq = s
		bodyExprs = n.Children[1:]
	} else {
		superSeq = []ir.Instruction{ir.PushObjectClass{}}
		bodyExprs = n.Children
	}

	leaf, ownerSeq, err := l.resolveConstantOwner(ast.Sym(n.Name))
	if err != nil {
		return nil, err
	}
	bodySeq, err := l.body(bodyExprs, true)
	if err != nil {
		return nil, err
	}

	seq := append([]ir.Instruction{}, superSeq...)
	seq = append(seq, ownerSeq...)
	seq = append(seq, ir.DefineClass{Name: leaf})
	seq = append(seq, bodySeq...)
	seq = append(seq, ir.End{Tag: ir.ScopeDefineClass})
	if used {
		seq = append(seq, ir.PushNil{})
	}
	return seq, nil
}
