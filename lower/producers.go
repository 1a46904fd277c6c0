package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// lit lowers a `lit` leaf. Pure producer: used = false emits nothing,
// matched against the literal kind otherwise.
func (l *Lowerer) lit(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	switch n.Lit.Kind {
	case ast.LitInt:
		return []ir.Instruction{ir.PushInt{Value: n.Lit.Int}}, nil
	case ast.LitFloat:
		return []ir.Instruction{ir.PushFloat{Value: n.Lit.Float}}, nil
	case ast.LitSymbol:
		return []ir.Instruction{ir.PushSymbol{Name: n.Lit.Symbol}}, nil
	case ast.LitRange:
		// A range literal recursively lowers end then begin, then emits
		// PushRange(exclude_end). Begin/End are themselves literal nodes;
		// either may be nil to mean absent, as for dot2/dot3.
		var seq []ir.Instruction
		endSeq, err := l.branch(n.Lit.End, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, endSeq...)
		beginSeq, err := l.branch(n.Lit.Begin, true)
		if err != nil {
			return nil, err
		}
		seq = append(seq, beginSeq...)
		seq = append(seq, ir.PushRange{ExcludeEnd: n.Lit.ExcludeEnd})
		return seq, nil
	default:
		return nil, &UnknownLiteralError{Kind: int(n.Lit.Kind)}
	}
}

// str lowers a `str` leaf: PushString with the string and its byte length.
// Pure producer.
func (l *Lowerer) str(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	return []ir.Instruction{ir.PushString{Value: n.Str, Len: len(n.Str)}}, nil
}

// constRef lowers `const`: PushSelf, then ConstFind(name). Pure producer.
func (l *Lowerer) constRef(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	return []ir.Instruction{ir.PushSelf{}, ir.ConstFind{Name: n.Name}}, nil
}

// colon2 lowers `colon2`: lower namespace (used), then ConstFind(name).
// Pure producer: the whole construct, namespace included, is elided when
// unused.
func (l *Lowerer) colon2(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	if len(n.Children) != 1 {
		return nil, &UnknownConstantNameError{Tag: string(n.Tag)}
	}
	nsSeq, err := l.Expr(n.Children[0], true)
	if err != nil {
		return nil, err
	}
	return append(nsSeq, ir.ConstFind{Name: n.Name}), nil
}

// colon3 lowers `colon3`: PushObjectClass, then ConstFind(name). Pure
// producer.
func (l *Lowerer) colon3(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	return []ir.Instruction{ir.PushObjectClass{}, ir.ConstFind{Name: n.Name}}, nil
}
