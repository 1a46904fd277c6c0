package lower

import (
	"fmt"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// ifExpr lowers `if(cond, then, else)`: lower cond (used), If, then (used,
// or PushNil if absent), Else(if), else (used, or PushNil if absent),
// End(if).
func (l *Lowerer) ifExpr(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(n.Children) != 3 {
		return nil, fmt.Errorf("lower: if node expects [cond, then, else] children")
	}
	condSeq, err := l.Expr(n.Children[0], true)
	if err != nil {
		return nil, err
	}
	thenSeq, err := l.branch(n.Children[1], used)
	if err != nil {
		return nil, err
	}
	elseSeq, err := l.branch(n.Children[2], used)
	if err != nil {
		return nil, err
	}

	seq := append([]ir.Instruction{}, condSeq...)
	seq = append(seq, ir.If{})
	seq = append(seq, thenSeq...)
	seq = append(seq, ir.Else{Tag: ir.ScopeIf})
	seq = append(seq, elseSeq...)
	seq = append(seq, ir.End{Tag: ir.ScopeIf})
	return seq, nil
}

// caseExpr lowers `case`. A case node's children are [subject?, when...,
// else?]; subject is absent for the subjectless form.
// We detect which form we have by checking whether the first child is
// itself a `when` node (subjectless) or an ordinary expression (subject
// present) — node.go's own convention for this ambiguity, since the AST
// carries no separate subject-presence flag.
func (l *Lowerer) caseExpr(n *ast.Node, used bool) ([]ir.Instruction, error) {
	children := n.Children
	var subject *ast.Node
	if len(children) > 0 && children[0].Tag != ast.TagWhen {
		subject = children[0]
		children = children[1:]
	}

	var whens []*ast.Node
	for len(children) > 0 && children[0].Tag == ast.TagWhen {
		whens = append(whens, children[0])
		children = children[1:]
	}
	var elseBranch *ast.Node
	if len(children) > 0 {
		elseBranch = children[0]
	}

	if subject != nil {
		return l.caseWithSubject(subject, whens, elseBranch, used)
	}
	return l.caseWithoutSubject(whens, elseBranch, used)
}

// caseWithSubject implements the subject form: evaluate the subject once,
// test each when's options against it with ===, run the first matching
// when's body, and discard the duplicated scrutinee at the end.
//
// The closing "Finally Swap, Pop" step only makes sense for the used =
// true case, where the body leaves a result above the scrutinee to swap
// into place. When used = false the body leaves nothing above the
// scrutinee, so a Swap would have no second operand; this lowering emits
// a single Pop instead in that case, which is the generalization that
// keeps invariant 1 (stack-effect soundness) true for both used values.
// Recorded in DESIGN.md.
func (l *Lowerer) caseWithSubject(subject *ast.Node, whens []*ast.Node, elseBranch *ast.Node, used bool) ([]ir.Instruction, error) {
	if len(whens) == 0 {
		return l.branch(elseBranch, used)
	}

	subjSeq, err := l.Expr(subject, true)
	if err != nil {
		return nil, err
	}

	seq := append([]ir.Instruction{}, subjSeq...)
	for _, w := range whens {
		if len(w.Children) != 2 {
			return nil, fmt.Errorf("lower: when node expects [options, body] children")
		}
		optionsNode, bodyNode := w.Children[0], w.Children[1]

		for _, opt := range optionsNode.Children {
			optSeq, err := l.Expr(opt, true)
			if err != nil {
				return nil, err
			}
			seq = append(seq, optSeq...)
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
		for range optionsNode.Children {
			seq = append(seq, ir.End{Tag: ir.ScopeIf})
		}

		bodySeq, err := l.branch(bodyNode, used)
		if err != nil {
			return nil, err
		}
		seq = append(seq, ir.If{})
		seq = append(seq, bodySeq...)
		seq = append(seq, ir.Else{Tag: ir.ScopeIf})
	}

	elseSeq, err := l.branch(elseBranch, used)
	if err != nil {
		return nil, err
	}
	seq = append(seq, elseSeq...)
	for range whens {
		seq = append(seq, ir.End{Tag: ir.ScopeIf})
	}

	if used {
		seq = append(seq, ir.Swap{}, ir.Pop{})
	} else {
		seq = append(seq, ir.Pop{})
	}
	return seq, nil
}

// caseWithoutSubject implements the subjectless form by desugaring to the
// equivalent if/or ladder: each when's options array is folded
// right-to-left into a nested or expression and lowered as a chained
// if-else ladder terminated by the else branch, delegating to the
// existing if/or transforms rather than re-deriving their instruction
// patterns here.
func (l *Lowerer) caseWithoutSubject(whens []*ast.Node, elseBranch *ast.Node, used bool) ([]ir.Instruction, error) {
	result := elseBranch
	if result == nil {
		result = &ast.Node{Tag: ast.TagNil}
	}
	for i := len(whens) - 1; i >= 0; i-- {
		w := whens[i]
		if len(w.Children) != 2 {
			return nil, fmt.Errorf("lower: when node expects [options, body] children")
		}
		optionsNode, bodyNode := w.Children[0], w.Children[1]
		cond, err := foldOr(optionsNode.Children)
		if err != nil {
			return nil, err
		}
		result = ast.New(ast.TagIf, cond, bodyNode, result)
	}
	return l.Expr(result, used)
}

// foldOr folds a when's options right-to-left into a nested `or`
// expression.
func foldOr(options []*ast.Node) (*ast.Node, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("lower: when node has no options")
	}
	acc := options[len(options)-1]
	for i := len(options) - 2; i >= 0; i-- {
		acc = ast.New(ast.TagOr, options[i], acc)
	}
	return acc, nil
}
