package lower

import "fmt"

// Error taxonomy: every failure is a synchronous, structured error
// carrying a kind and minimal context, built on plain fmt.Errorf-based
// error reporting.

// UnexpectedRootError is returned when the top-level AST node is not a
// `block`.
type UnexpectedRootError struct {
	Tag string
}

func (e *UnexpectedRootError) Error() string {
	return fmt.Sprintf("lower: unexpected root node tag %q, expected block", e.Tag)
}

// UnknownConstructError is returned when no transform is registered for a
// node's tag.
type UnknownConstructError struct {
	Tag string
}

func (e *UnknownConstructError) Error() string {
	return fmt.Sprintf("lower: unknown construct %q", e.Tag)
}

// UnknownLiteralError is returned when a `lit` node's payload kind isn't
// one this pass lowers.
type UnknownLiteralError struct {
	Kind int
}

func (e *UnknownLiteralError) Error() string {
	return fmt.Sprintf("lower: unknown literal kind %d", e.Kind)
}

// OddHashItemsError is returned when a `hash` node has an odd number of
// children.
type OddHashItemsError struct {
	Count int
}

func (e *OddHashItemsError) Error() string {
	return fmt.Sprintf("lower: hash node has odd item count %d", e.Count)
}

// UnknownConstantNameError is returned when a constant-owner slot has an
// unexpected node shape.
type UnknownConstantNameError struct {
	Tag string
}

func (e *UnknownConstantNameError) Error() string {
	return fmt.Sprintf("lower: unknown constant name shape %q", e.Tag)
}

// UnexpectedIterCallError is returned when an `iter` node's embedded head
// is not a `call`.
type UnexpectedIterCallError struct {
	Tag string
}

func (e *UnexpectedIterCallError) Error() string {
	return fmt.Sprintf("lower: iter node's embedded head has tag %q, expected call", e.Tag)
}
