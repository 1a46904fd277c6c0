package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// resolveConstantOwner is the constant-owner resolution helper: given a
// constant-defining construct's name slot — an atomic symbol, a colon2
// node, or a colon3 node — it returns the leaf name and the instructions
// that push that constant's owner onto the stack.
func (l *Lowerer) resolveConstantOwner(nameSlot *ast.Node) (leaf string, prep []ir.Instruction, err error) {
	switch nameSlot.Tag {
	case ast.TagSym:
		return nameSlot.Name, []ir.Instruction{ir.PushSelf{}}, nil
	case ast.TagColon2:
		if len(nameSlot.Children) != 1 {
			return "", nil, &UnknownConstantNameError{Tag: string(nameSlot.Tag)}
		}
		nsSeq, err := l.Expr(nameSlot.Children[0], true)
		if err != nil {
			return "", nil, err
		}
		return nameSlot.Name, nsSeq, nil
	case ast.TagColon3:
		return nameSlot.Name, []ir.Instruction{ir.PushObjectClass{}}, nil
	default:
		return "", nil, &UnknownConstantNameError{Tag: string(nameSlot.Tag)}
	}
}
