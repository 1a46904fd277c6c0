// Package lower implements pass 1 of the emberc compiler: the recursive
// AST-to-instruction-stream transform, with one function per node kind,
// explicit recursion, and explicit tail-position threading.
package lower

import (
	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/ir"
)

// Lowerer performs the AST-to-IR transform. It carries no state across
// calls; the struct exists only so methods read naturally, not to
// accumulate anything between Expr calls.
type Lowerer struct{}

// New returns a ready-to-use Lowerer.
func New() *Lowerer { return &Lowerer{} }

// Lower is the top-level driver: it requires root to be tagged `block`,
// then lowers it with the caller-supplied used flag. Every transform below
// returns an already-flat []ir.Instruction, built by appending rather than
// by returning nested sequences, so there is no separate flattening step.
func Lower(root *ast.Node, used bool) ([]ir.Instruction, error) {
	return New().Lower(root, used)
}

func (l *Lowerer) Lower(root *ast.Node, used bool) ([]ir.Instruction, error) {
	if root == nil || root.Tag != ast.TagBlock {
		tag := ""
		if root != nil {
			tag = string(root.Tag)
		}
		return nil, &UnexpectedRootError{Tag: tag}
	}
	return l.Expr(root, used)
}

// Expr is the expression dispatcher: route an AST node to the transform
// registered for its tag, or fail with UnknownConstruct.
func (l *Lowerer) Expr(n *ast.Node, used bool) ([]ir.Instruction, error) {
	switch n.Tag {
	// Pure producers.
	case ast.TagLit:
		return l.lit(n, used)
	case ast.TagStr:
		return l.str(n, used)
	case ast.TagTrue:
		return l.leaf(ir.PushTrue{}, used)
	case ast.TagFalse:
		return l.leaf(ir.PushFalse{}, used)
	case ast.TagNil:
		return l.leaf(ir.PushNil{}, used)
	case ast.TagSelf:
		return l.leaf(ir.PushSelf{}, used)
	case ast.TagLvar:
		return l.varGet(ir.VariableGet{Name: n.Name}, used)
	case ast.TagIvar:
		return l.varGet(ir.InstanceVariableGet{Name: n.Name}, used)
	case ast.TagGvar:
		return l.varGet(ir.GlobalVariableGet{Name: n.Name}, used)
	case ast.TagConst:
		return l.constRef(n, used)
	case ast.TagColon2:
		return l.colon2(n, used)
	case ast.TagColon3:
		return l.colon3(n, used)

	// Assignments.
	case ast.TagLasgn:
		return l.assign(n, ir.VariableSet{Name: n.Name}, ir.VariableGet{Name: n.Name}, used)
	case ast.TagIasgn:
		return l.assign(n, ir.InstanceVariableSet{Name: n.Name}, ir.InstanceVariableGet{Name: n.Name}, used)
	case ast.TagGasgn:
		return l.assign(n, ir.GlobalVariableSet{Name: n.Name}, ir.GlobalVariableGet{Name: n.Name}, used)
	case ast.TagCdecl:
		return l.cdecl(n, used)

	// Aggregates.
	case ast.TagArray:
		return l.array(n, used)
	case ast.TagHash:
		return l.hash(n, used)

	// Range sugar.
	case ast.TagDot2:
		return l.dotRange(n, used, false)
	case ast.TagDot3:
		return l.dotRange(n, used, true)

	// Short-circuit.
	case ast.TagAnd:
		return l.and(n, used)
	case ast.TagOr:
		return l.or(n, used)

	// Conditionals.
	case ast.TagIf:
		return l.ifExpr(n, used)
	case ast.TagCase:
		return l.caseExpr(n, used)

	// Calls and blocks.
	case ast.TagCall:
		return l.call(n, used)
	case ast.TagIter:
		return l.iter(n, used)
	case ast.TagYield:
		return l.yieldExpr(n, used)

	// Definitions.
	case ast.TagDefn:
		return l.defn(n, used)
	case ast.TagClass:
		return l.class(n, used)

	// Error-handled region.
	case ast.TagRescue:
		return l.rescueExpr(n, used)

	// The generic "body" construct; also what the top-level driver calls
	// via Lower's root-is-block requirement.
	case ast.TagBlock:
		return l.body(n.Children, used)

	default:
		return nil, &UnknownConstructError{Tag: string(n.Tag)}
	}
}

// finish appends a trailing Pop for a value-producing sequence that always
// evaluates, for its side effects, but discards its result when the
// caller doesn't need it.
func finish(seq []ir.Instruction, used bool) []ir.Instruction {
	if used {
		return seq
	}
	return append(seq, ir.Pop{})
}

// leaf lowers a zero-arity pure-producer instruction: nothing when unused
// (pure producers emit nothing when their value is discarded), the
// instruction itself when used.
func (l *Lowerer) leaf(instr ir.Instruction, used bool) ([]ir.Instruction, error) {
	if !used {
		return nil, nil
	}
	return []ir.Instruction{instr}, nil
}

func (l *Lowerer) varGet(instr ir.Instruction, used bool) ([]ir.Instruction, error) {
	return l.leaf(instr, used)
}

// branch lowers an optional then/else/when-body slot: PushNil (or nothing,
// per the used flag) when the node is absent.
func (l *Lowerer) branch(n *ast.Node, used bool) ([]ir.Instruction, error) {
	if n == nil {
		return l.leaf(ir.PushNil{}, used)
	}
	return l.Expr(n, used)
}
