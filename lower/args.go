package lower

import (
	"fmt"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// formals lowers a formal-parameter list. Callers (defn/iter)
// always need their parameters bound, so this is only ever invoked with
// used = true in this package; the used = false "emit nothing" case is
// kept as an explicit, directly testable branch rather than an
// unreachable one.
func (l *Lowerer) formals(argsNode *ast.Node) ([]ir.Instruction, error) {
	return l.formalsUsed(argsNode, true)
}

func (l *Lowerer) formalsUsed(argsNode *ast.Node, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	if isSimpleFormals(argsNode.Children) {
		var seq []ir.Instruction
		for i, p := range argsNode.Children {
			seq = append(seq, ir.PushArg{Index: i}, ir.VariableSet{Name: p.Name, LocalOnly: true})
		}
		return seq, nil
	}

	seq := []ir.Instruction{ir.PushArgs{}}
	bind, err := l.bindComplexFormals(argsNode.Children)
	if err != nil {
		return nil, err
	}
	return append(seq, bind...), nil
}

// isSimpleFormals reports whether every parameter is a bare atomic name:
// no nested destructuring, no splat, no default.
func isSimpleFormals(params []*ast.Node) bool {
	for _, p := range params {
		if p.Tag != ast.TagSym {
			return false
		}
	}
	return true
}

// bindComplexFormals is the argument-lowering subroutine used for
// positional, splat, optional-default, and nested destructure binding.
// Its precondition is that the materialized argument array sits on top
// of the stack (just pushed by PushArgs, or — for a nested destructure
// parameter — just fetched as one element of an enclosing array); its
// postcondition is that the array is consumed and every parameter in
// params is bound, net stack effect 0.
//
// This lowering expresses array indexing and slicing as ordinary Sends
// to `[]` (on an integer index or a range), which is how this language
// already expresses indexing anywhere else a user could write it, rather
// than inventing new IR instructions for it. Recorded in DESIGN.md.
func (l *Lowerer) bindComplexFormals(params []*ast.Node) ([]ir.Instruction, error) {
	var seq []ir.Instruction
	idx := 0
	for _, p := range params {
		switch p.Tag {
		case ast.TagSplat:
			sliceSeq := arraySliceFrom(idx)
			seq = append(seq, sliceSeq...)
			if p.Name == "" {
				seq = append(seq, ir.Pop{})
			} else {
				seq = append(seq, ir.VariableSet{Name: p.Name, LocalOnly: true})
			}
		case ast.TagOptArg:
			if len(p.Children) != 1 {
				return nil, fmt.Errorf("lower: optarg node expects exactly one default child")
			}
			fetchSeq := arrayIndexAt(idx)
			defaultSeq, err := l.Expr(p.Children[0], true)
			if err != nil {
				return nil, err
			}
			seq = append(seq, orPattern(fetchSeq, defaultSeq)...)
			seq = append(seq, ir.VariableSet{Name: p.Name, LocalOnly: true})
			idx++
		case ast.TagDestructure:
			fetchSeq := arrayIndexAt(idx)
			seq = append(seq, fetchSeq...)
			nested, err := l.bindComplexFormals(p.Children)
			if err != nil {
				return nil, err
			}
			seq = append(seq, nested...)
			idx++
		case ast.TagSym:
			seq = append(seq, arrayIndexAt(idx)...)
			seq = append(seq, ir.VariableSet{Name: p.Name, LocalOnly: true})
			idx++
		default:
			return nil, fmt.Errorf("lower: unexpected formal parameter tag %q", p.Tag)
		}
	}
	// The array itself is still on top (every fetch above preserves it via
	// DupRel); drop it now that every parameter has been bound.
	seq = append(seq, ir.Pop{})
	return seq, nil
}

// arrayIndexAt fetches array[idx] without disturbing the persistent array
// copy sitting beneath it: push idx and argc, then DupRel(2) to bring a
// receiver copy of the array to the top right before Send("[]"), which
// consumes that copy and leaves the original for the next fetch.
func arrayIndexAt(idx int) []ir.Instruction {
	return []ir.Instruction{
		ir.PushInt{Value: int64(idx)},
		ir.PushArgc{Count: 1},
		ir.DupRel{Depth: 2},
		ir.Send{Message: "[]", ReceiverIsSelf: false, WithBlock: false},
	}
}

// arraySliceFrom fetches array[idx..] (an open-ended range), the rest-args
// slice a splat parameter binds, using the same persistent-array-via-
// DupRel shape as arrayIndexAt.
func arraySliceFrom(idx int) []ir.Instruction {
	return []ir.Instruction{
		ir.PushNil{}, // range end (open-ended)
		ir.PushInt{Value: int64(idx)}, // range begin
		ir.PushRange{ExcludeEnd: false},
		ir.PushArgc{Count: 1},
		ir.DupRel{Depth: 2},
		ir.Send{Message: "[]", ReceiverIsSelf: false, WithBlock: false},
	}
}
