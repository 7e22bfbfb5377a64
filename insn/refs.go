package insn

import "strings"

// opcodeOf is implemented by the zero-size tag types below. Each variant
// fixes its opcode through its tag, so even a zero value reports the
// opcode of its own type.
type opcodeOf interface {
	opcode() Opcode
}

type (
	getfieldOp        struct{}
	putfieldOp        struct{}
	getstaticOp       struct{}
	putstaticOp       struct{}
	invokevirtualOp   struct{}
	invokespecialOp   struct{}
	invokestaticOp    struct{}
	invokeinterfaceOp struct{}
	newOp             struct{}
	checkcastOp       struct{}
	instanceofOp      struct{}
)

func (getfieldOp) opcode() Opcode        { return OpGetfield }
func (putfieldOp) opcode() Opcode        { return OpPutfield }
func (getstaticOp) opcode() Opcode       { return OpGetstatic }
func (putstaticOp) opcode() Opcode       { return OpPutstatic }
func (invokevirtualOp) opcode() Opcode   { return OpInvokevirtual }
func (invokespecialOp) opcode() Opcode   { return OpInvokespecial }
func (invokestaticOp) opcode() Opcode    { return OpInvokestatic }
func (invokeinterfaceOp) opcode() Opcode { return OpInvokeinterface }
func (newOp) opcode() Opcode             { return OpNew }
func (checkcastOp) opcode() Opcode       { return OpCheckcast }
func (instanceofOp) opcode() Opcode      { return OpInstanceof }

// cpInsn is the state shared by every instruction with a constant-pool
// operand. The index is set once by a constructor and never written again.
type cpInsn[K opcodeOf] struct {
	index uint16
}

// Opcode returns the instruction's opcode.
func (c cpInsn[K]) Opcode() Opcode {
	var k K
	return k.opcode()
}

// Index returns the constant-pool index operand.
func (c cpInsn[K]) Index() uint16 { return c.index }

// ---------------------------------------------------------------------------
// Field and method references
// ---------------------------------------------------------------------------

type memberInsn[K opcodeOf] struct {
	cpInsn[K]
}

func memberKinds(op Opcode) []RefKind {
	switch op {
	case OpGetfield, OpPutfield, OpGetstatic, OpPutstatic:
		return []RefKind{RefField}
	case OpInvokevirtual:
		return []RefKind{RefMethod}
	case OpInvokespecial, OpInvokestatic:
		return []RefKind{RefMethod, RefInterfaceMethod}
	case OpInvokeinterface:
		return []RefKind{RefInterfaceMethod}
	}
	return nil
}

// Reference resolves the referenced field or method.
func (m memberInsn[K]) Reference(r Resolver) (Descriptor, error) {
	return resolve(r, m.Opcode(), m.index, memberKinds(m.Opcode())...)
}

// ClassName returns the internal name of the class declaring the member.
func (m memberInsn[K]) ClassName(r Resolver) (string, error) {
	d, err := m.Reference(r)
	return d.Class, err
}

// MemberName returns the field or method name.
func (m memberInsn[K]) MemberName(r Resolver) (string, error) {
	d, err := m.Reference(r)
	return d.Name, err
}

// Signature returns the field or method descriptor.
func (m memberInsn[K]) Signature(r Resolver) (string, error) {
	d, err := m.Reference(r)
	return d.Signature, err
}

// LoadClassType returns the class that resolving the member may load.
func (m memberInsn[K]) LoadClassType(r Resolver) (string, error) {
	d, err := m.Reference(r)
	if err != nil {
		return "", err
	}
	return elementClass(d.Class), nil
}

func newField[K opcodeOf](index uint16) fieldInsn[K] {
	return fieldInsn[K]{memberInsn[K]{cpInsn[K]{index}}}
}

type fieldInsn[K opcodeOf] struct {
	memberInsn[K]
}

// Type returns the field's type descriptor.
func (f fieldInsn[K]) Type(r Resolver) (string, error) {
	return f.Signature(r)
}

// FieldSize returns the value category of the field: 2 for long and double,
// 1 otherwise.
func (f fieldInsn[K]) FieldSize(r Resolver) (int, error) {
	d, err := f.Reference(r)
	if err != nil {
		return 0, err
	}
	return d.Category, nil
}

func newInvoke[K opcodeOf](index uint16) invokeInsn[K] {
	return invokeInsn[K]{memberInsn[K]{cpInsn[K]{index}}}
}

type invokeInsn[K opcodeOf] struct {
	memberInsn[K]
}

// Type returns the method's return type descriptor.
func (i invokeInsn[K]) Type(r Resolver) (string, error) {
	sig, err := i.Signature(r)
	if err != nil {
		return "", err
	}
	if end := strings.LastIndexByte(sig, ')'); end >= 0 {
		return sig[end+1:], nil
	}
	return sig, nil
}

// ArgumentWords returns the stack words taken by the declared arguments,
// not counting a receiver.
func (i invokeInsn[K]) ArgumentWords(r Resolver) (int, error) {
	d, err := i.Reference(r)
	if err != nil {
		return 0, err
	}
	return d.ArgWords, nil
}

// ReturnWords returns the stack words of the return value, 0 for void.
func (i invokeInsn[K]) ReturnWords(r Resolver) (int, error) {
	d, err := i.Reference(r)
	if err != nil {
		return 0, err
	}
	return d.Category, nil
}

// ---------------------------------------------------------------------------
// Class references
// ---------------------------------------------------------------------------

func newClass[K opcodeOf](index uint16) classInsn[K] {
	return classInsn[K]{cpInsn[K]{index}}
}

type classInsn[K opcodeOf] struct {
	cpInsn[K]
}

// Reference resolves the referenced class.
func (c classInsn[K]) Reference(r Resolver) (Descriptor, error) {
	return resolve(r, c.Opcode(), c.index, RefClass)
}

// ClassName returns the referenced class's internal name.
func (c classInsn[K]) ClassName(r Resolver) (string, error) {
	d, err := c.Reference(r)
	return d.Class, err
}

// Type returns the referenced class as a type descriptor.
func (c classInsn[K]) Type(r Resolver) (string, error) {
	name, err := c.ClassName(r)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(name, "[") {
		return name, nil
	}
	return "L" + name + ";", nil
}

// LoadClassType returns the class that may be loaded, or "" for arrays of
// primitives.
func (c classInsn[K]) LoadClassType(r Resolver) (string, error) {
	name, err := c.ClassName(r)
	if err != nil {
		return "", err
	}
	return elementClass(name), nil
}

// elementClass strips array dimensions from a class name. Arrays of
// primitives load nothing.
func elementClass(name string) string {
	if !strings.HasPrefix(name, "[") {
		return name
	}
	elem := strings.TrimLeft(name, "[")
	if strings.HasPrefix(elem, "L") && strings.HasSuffix(elem, ";") {
		return elem[1 : len(elem)-1]
	}
	return ""
}
