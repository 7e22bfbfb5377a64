package insn

import "github.com/chazu/jbc/excs"

// invokeConsumed computes the words popped by an invoke variant.
// Receiver-taking forms consume one extra word for objectref.
func invokeConsumed[K opcodeOf](i invokeInsn[K], r Resolver, receiver bool) (int, error) {
	n, err := i.ArgumentWords(r)
	if err != nil {
		return 0, err
	}
	if receiver {
		n++
	}
	return n, nil
}

// InvokeVirtual - invoke instance method, dispatch on the receiver's class
//
//	Stack: ..., objectref, [arg1, [arg2 ...]] -> ...[, result]
type InvokeVirtual struct {
	invokeInsn[invokevirtualOp]
}

// NewInvokeVirtual returns an invokevirtual referencing the Methodref at
// index.
func NewInvokeVirtual(index uint16) *InvokeVirtual {
	return &InvokeVirtual{newInvoke[invokevirtualOp](index)}
}

func (i *InvokeVirtual) Capabilities() Capability { return invokeCaps }

func (i *InvokeVirtual) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution,
		excs.NullPointerException,
		excs.IncompatibleClassChangeError,
		excs.AbstractMethodError,
		excs.UnsatisfiedLinkError)
}

func (i *InvokeVirtual) ConsumedWords(r Resolver) (int, error) {
	return invokeConsumed(i.invokeInsn, r, true)
}

func (i *InvokeVirtual) ProducedWords(r Resolver) (int, error) { return i.ReturnWords(r) }

func (i *InvokeVirtual) Accept(v Visitor) error { return accept(i, v) }

// InvokeSpecial - invoke instance method without virtual dispatch:
// constructors, private methods and superclass methods
//
//	Stack: ..., objectref, [arg1, [arg2 ...]] -> ...[, result]
type InvokeSpecial struct {
	invokeInsn[invokespecialOp]
}

// NewInvokeSpecial returns an invokespecial referencing the Methodref or
// InterfaceMethodref at index.
func NewInvokeSpecial(index uint16) *InvokeSpecial {
	return &InvokeSpecial{newInvoke[invokespecialOp](index)}
}

func (i *InvokeSpecial) Capabilities() Capability { return invokeCaps }

func (i *InvokeSpecial) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution,
		excs.NullPointerException,
		excs.IncompatibleClassChangeError,
		excs.AbstractMethodError,
		excs.UnsatisfiedLinkError)
}

func (i *InvokeSpecial) ConsumedWords(r Resolver) (int, error) {
	return invokeConsumed(i.invokeInsn, r, true)
}

func (i *InvokeSpecial) ProducedWords(r Resolver) (int, error) { return i.ReturnWords(r) }

func (i *InvokeSpecial) Accept(v Visitor) error { return accept(i, v) }

// InvokeStatic - invoke a class (static) method
//
//	Stack: ..., [arg1, [arg2 ...]] -> ...[, result]
type InvokeStatic struct {
	invokeInsn[invokestaticOp]
}

// NewInvokeStatic returns an invokestatic referencing the Methodref or
// InterfaceMethodref at index.
func NewInvokeStatic(index uint16) *InvokeStatic {
	return &InvokeStatic{newInvoke[invokestaticOp](index)}
}

func (i *InvokeStatic) Capabilities() Capability { return invokeCaps }

func (i *InvokeStatic) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution,
		excs.UnsatisfiedLinkError,
		excs.IncompatibleClassChangeError)
}

func (i *InvokeStatic) ConsumedWords(r Resolver) (int, error) {
	return invokeConsumed(i.invokeInsn, r, false)
}

func (i *InvokeStatic) ProducedWords(r Resolver) (int, error) { return i.ReturnWords(r) }

func (i *InvokeStatic) Accept(v Visitor) error { return accept(i, v) }

// InvokeInterface - invoke interface method
//
//	Stack: ..., objectref, [arg1, [arg2 ...]] -> ...[, result]
//
// The count operand is carried for encoding; stack effect is computed from
// the method descriptor.
type InvokeInterface struct {
	invokeInsn[invokeinterfaceOp]
	count uint8
}

// NewInvokeInterface returns an invokeinterface referencing the
// InterfaceMethodref at index. count is the argument word count including
// the receiver.
func NewInvokeInterface(index uint16, count uint8) *InvokeInterface {
	return &InvokeInterface{newInvoke[invokeinterfaceOp](index), count}
}

// Count returns the encoded argument word count, receiver included.
func (i *InvokeInterface) Count() uint8 { return i.count }

func (i *InvokeInterface) Capabilities() Capability { return invokeCaps }

func (i *InvokeInterface) Exceptions() []excs.Kind {
	return excs.Compose(excs.InterfaceMethodResolution,
		excs.NullPointerException,
		excs.AbstractMethodError,
		excs.UnsatisfiedLinkError)
}

func (i *InvokeInterface) ConsumedWords(r Resolver) (int, error) {
	return invokeConsumed(i.invokeInsn, r, true)
}

func (i *InvokeInterface) ProducedWords(r Resolver) (int, error) { return i.ReturnWords(r) }

func (i *InvokeInterface) Accept(v Visitor) error { return accept(i, v) }
