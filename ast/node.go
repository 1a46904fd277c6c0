// Package ast defines the tagged-tuple AST node representation that pass 1
// lowers, along with a reader for the textual S-expression notation used to
// write AST fixtures (the same notation the end-to-end scenarios use).
package ast

// Tag identifies the surface construct an AST node represents.
type Tag string

const (
	TagBlock Tag = "block"

	// Atomic leaves.
	TagSym   Tag = "sym" // a bare atomic symbol used as a name, not a variable read
	TagLit   Tag = "lit"
	TagStr   Tag = "str"
	TagTrue  Tag = "true"
	TagFalse Tag = "false"
	TagNil   Tag = "nil"
	TagSelf  Tag = "self"

	// Variable references, one dedicated tag per kind: the pass never
	// rewrites one kind into another.
	TagLvar Tag = "lvar"
	TagIvar Tag = "ivar"
	TagGvar Tag = "gvar"

	TagLasgn Tag = "lasgn"
	TagIasgn Tag = "iasgn"
	TagGasgn Tag = "gasgn"
	TagCdecl Tag = "cdecl"

	TagConst  Tag = "const"
	TagColon2 Tag = "colon2"
	TagColon3 Tag = "colon3"

	TagArray Tag = "array"
	TagHash  Tag = "hash"

	TagDot2 Tag = "dot2"
	TagDot3 Tag = "dot3"

	TagAnd Tag = "and"
	TagOr  Tag = "or"

	TagIf   Tag = "if"
	TagCase Tag = "case"
	TagWhen Tag = "when"

	TagCall  Tag = "call"
	TagIter  Tag = "iter"
	TagYield Tag = "yield"

	TagDefn  Tag = "defn"
	TagClass Tag = "class"

	TagRescue Tag = "rescue"
	// TagResbody is a single rescue handler branch: Children =
	// [exceptionClassesArray, body]; Name is the bound exception variable
	// ("" if the handler doesn't bind one), e.g. `rescue Foo, Bar => e`.
	TagResbody Tag = "resbody"
	// TagEnsure wraps a rescue node's always-run cleanup body; Children
	// are the ensure body's expressions.
	TagEnsure Tag = "ensure"

	// Formal-parameter list shapes.
	TagArgs        Tag = "args"
	TagSplat       Tag = "splat"
	TagOptArg      Tag = "optarg"
	TagDestructure Tag = "destructure"
)

// LiteralKind distinguishes the payload carried by a `lit` node.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitSymbol
	LitRange
)

// Literal is the payload of a `lit` node.
type Literal struct {
	Kind LiteralKind

	Int    int64   // LitInt
	Float  float64 // LitFloat
	Symbol string  // LitSymbol

	// LitRange: Begin/End are themselves literal nodes (commonly `lit`
	// integer leaves), mirroring the source grammar's `1..10` sugar baked
	// directly into a literal rather than built from dot2/dot3 nodes.
	Begin, End *Node
	ExcludeEnd bool
}

// Node is a tagged, ordered tuple: a head Tag plus whatever payload and
// children that tag calls for. Which fields are meaningful depends on Tag;
// see the per-tag comments below. Nodes are immutable once built.
type Node struct {
	Tag Tag

	// sym; lvar/ivar/gvar/lasgn/iasgn/gasgn (variable name); const/cdecl
	// (constant name); colon2/colon3 (constant name); defn/class (defined
	// name); call (message name, empty for an implicit-receiver call is
	// still a valid message, so receiver presence is tracked separately).
	Name string

	// lasgn/iasgn/gasgn/splat/optarg: local_only-style binding flag is not
	// needed here (assignments always bind); Name carries the target.
	// VariableSet's local_only=true is a lowering-time decision, not an
	// AST property.

	// str
	Str string

	// lit
	Lit Literal

	// call: receiver presence (absent means implicit self)
	HasReceiver bool
	WithBlock   bool // caller-supplied with_block flag for `call`

	// class: superclass presence (absent means Object)
	HasSuperclass bool

	// Ordered children; meaning depends on Tag:
	//   block:        body expressions
	//   lasgn/iasgn/gasgn: [value]
	//   cdecl:        [owner-name-slot, value] where owner-name-slot is a
	//                 Node tagged sym/colon2/colon3
	//   const:        []   (Name holds the constant name)
	//   colon2:       [namespace] (Name holds the constant name)
	//   colon3:       []   (Name holds the constant name)
	//   array/hash:   items (hash requires an even count)
	//   dot2/dot3:    [begin, end] (either may be nil to mean absent)
	//   and/or:       [lhs, rhs]
	//   if:           [cond, then, else] (then/else may be nil)
	//   case:         [subject?, when..., else] - subject is absent for the
	//                 subjectless form; lower/conditional.go tells the two
	//                 apart by checking whether the first child is itself a
	//                 `when` node
	//   when:         [optionsArray, body]
	//   call:         [receiver?, arg...] - receiver is nil/absent per
	//                 HasReceiver
	//   iter:         [call, args, body]
	//   yield:        [arg...]
	//   defn:         [args, body...]
	//   class:        [superclass?, body...] per HasSuperclass
	//   rescue:       [body, resbody..., ensure?] - see lower/rescue.go;
	//                 there is no else slot: every child after the body
	//                 that is not an `ensure` is lowered as a resbody
	//   args:         formal parameter nodes (sym/splat/optarg/destructure)
	//   splat:        [] (Name is the bound name, "" for an anonymous splat)
	//   optarg:       [default] (Name is the bound name)
	//   destructure:  nested parameter nodes
	Children []*Node
}

// Sym builds an atomic-symbol leaf used as a bare name, e.g. a cdecl/class
// owner slot.
func Sym(name string) *Node { return &Node{Tag: TagSym, Name: name} }

// New builds a tagged node with the given children.
func New(tag Tag, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Int builds a `lit` integer leaf.
func Int(v int64) *Node { return &Node{Tag: TagLit, Lit: Literal{Kind: LitInt, Int: v}} }

// Float builds a `lit` float leaf.
func Float(v float64) *Node { return &Node{Tag: TagLit, Lit: Literal{Kind: LitFloat, Float: v}} }

// Symbol builds a `lit` symbol leaf (a Ruby-style `:name` literal, distinct
// from TagSym's name-as-data leaf).
func Symbol(v string) *Node { return &Node{Tag: TagLit, Lit: Literal{Kind: LitSymbol, Symbol: v}} }

// Range builds a `lit` range leaf.
func Range(begin, end *Node, excludeEnd bool) *Node {
	return &Node{Tag: TagLit, Lit: Literal{Kind: LitRange, Begin: begin, End: end, ExcludeEnd: excludeEnd}}
}

// StrNode builds a `str` leaf.
func StrNode(v string) *Node { return &Node{Tag: TagStr, Str: v} }
