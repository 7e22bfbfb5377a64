package insn

import "github.com/chazu/jbc/excs"

// checkedWords resolves the class operand and returns n. The stack effect of
// class instructions is constant but the operand must still be a Class.
func checkedWords[K opcodeOf](c classInsn[K], r Resolver, n int) (int, error) {
	if _, err := c.Reference(r); err != nil {
		return 0, err
	}
	return n, nil
}

// New - create new object
//
//	Stack: ... -> ..., objectref
type New struct {
	classInsn[newOp]
}

// NewNew returns a new instruction referencing the Class entry at index.
func NewNew(index uint16) *New {
	return &New{newClass[newOp](index)}
}

func (n *New) Capabilities() Capability { return newCaps }

func (n *New) Exceptions() []excs.Kind {
	return excs.Compose(excs.ClassAndInterfaceResolution, excs.InstantiationError)
}

func (n *New) ProducedWords(r Resolver) (int, error) { return checkedWords(n.classInsn, r, 1) }

func (n *New) Accept(v Visitor) error { return accept(n, v) }

// CheckCast - check whether object is of given type
//
//	Stack: ..., objectref -> ..., objectref
type CheckCast struct {
	classInsn[checkcastOp]
}

// NewCheckCast returns a checkcast referencing the Class entry at index.
func NewCheckCast(index uint16) *CheckCast {
	return &CheckCast{newClass[checkcastOp](index)}
}

func (c *CheckCast) Capabilities() Capability { return classTestCaps }

func (c *CheckCast) Exceptions() []excs.Kind {
	return excs.Compose(excs.ClassAndInterfaceResolution, excs.ClassCastException)
}

func (c *CheckCast) ConsumedWords(r Resolver) (int, error) { return checkedWords(c.classInsn, r, 1) }

func (c *CheckCast) ProducedWords(r Resolver) (int, error) { return checkedWords(c.classInsn, r, 1) }

func (c *CheckCast) Accept(v Visitor) error { return accept(c, v) }

// InstanceOf - determine if object is of given type
//
//	Stack: ..., objectref -> ..., result
type InstanceOf struct {
	classInsn[instanceofOp]
}

// NewInstanceOf returns an instanceof referencing the Class entry at index.
func NewInstanceOf(index uint16) *InstanceOf {
	return &InstanceOf{newClass[instanceofOp](index)}
}

func (i *InstanceOf) Capabilities() Capability { return classTestCaps }

func (i *InstanceOf) Exceptions() []excs.Kind {
	return excs.Compose(excs.ClassAndInterfaceResolution)
}

func (i *InstanceOf) ConsumedWords(r Resolver) (int, error) { return checkedWords(i.classInsn, r, 1) }

func (i *InstanceOf) ProducedWords(r Resolver) (int, error) { return checkedWords(i.classInsn, r, 1) }

func (i *InstanceOf) Accept(v Visitor) error { return accept(i, v) }

// ArrayLength - get length of array
//
//	Stack: ..., arrayref -> ..., length
type ArrayLength struct{}

// NewArrayLength returns an arraylength instruction.
func NewArrayLength() *ArrayLength { return &ArrayLength{} }

func (a *ArrayLength) Opcode() Opcode { return OpArraylength }

func (a *ArrayLength) Capabilities() Capability { return arrayLenCaps }

func (a *ArrayLength) Exceptions() []excs.Kind {
	return []excs.Kind{excs.NullPointerException}
}

func (a *ArrayLength) ConsumedWords(Resolver) (int, error) { return 1, nil }

func (a *ArrayLength) ProducedWords(Resolver) (int, error) { return 1, nil }

func (a *ArrayLength) Accept(v Visitor) error { return accept(a, v) }
