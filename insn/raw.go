package insn

import "fmt"

// Raw collects the operands of one instruction while it is being decoded.
// It is not an Instruction; call Build once every operand has been read.
// A Raw may be reused after Reset.
type Raw struct {
	op    Opcode
	index uint16
	count uint8
	set   rawFields
}

type rawFields uint8

const (
	rawOpcode rawFields = 1 << iota
	rawIndex
	rawCount
)

// SetOpcode records the opcode byte.
func (r *Raw) SetOpcode(op Opcode) { r.op = op; r.set |= rawOpcode }

// SetIndex records a constant-pool index operand.
func (r *Raw) SetIndex(index uint16) { r.index = index; r.set |= rawIndex }

// SetCount records the invokeinterface count operand.
func (r *Raw) SetCount(count uint8) { r.count = count; r.set |= rawCount }

// Reset clears every field.
func (r *Raw) Reset() { *r = Raw{} }

// Build returns the immutable instruction described by r. It fails with
// ErrIncomplete if an operand the opcode needs is missing or zero,
// ErrUnknownOpcode for bytes the format does not define and
// ErrUnsupportedOpcode for defined opcodes without a variant here.
func (r *Raw) Build() (Instruction, error) {
	if r.set&rawOpcode == 0 {
		return nil, fmt.Errorf("insn: build: no opcode: %w", ErrIncomplete)
	}
	if !r.op.Defined() {
		return nil, fmt.Errorf("insn: build: 0x%02X: %w", byte(r.op), ErrUnknownOpcode)
	}

	switch r.op {
	case OpArraylength:
		return NewArrayLength(), nil
	}

	if r.set&rawIndex == 0 || r.index == 0 {
		if !hasVariant(r.op) {
			return nil, fmt.Errorf("insn: build: %s: %w", r.op, ErrUnsupportedOpcode)
		}
		return nil, fmt.Errorf("insn: build: %s: missing constant-pool index: %w", r.op, ErrIncomplete)
	}

	switch r.op {
	case OpGetfield:
		return NewGetField(r.index), nil
	case OpPutfield:
		return NewPutField(r.index), nil
	case OpGetstatic:
		return NewGetStatic(r.index), nil
	case OpPutstatic:
		return NewPutStatic(r.index), nil
	case OpInvokevirtual:
		return NewInvokeVirtual(r.index), nil
	case OpInvokespecial:
		return NewInvokeSpecial(r.index), nil
	case OpInvokestatic:
		return NewInvokeStatic(r.index), nil
	case OpInvokeinterface:
		if r.set&rawCount == 0 || r.count == 0 {
			return nil, fmt.Errorf("insn: build: %s #%d: missing count: %w", r.op, r.index, ErrIncomplete)
		}
		return NewInvokeInterface(r.index, r.count), nil
	case OpNew:
		return NewNew(r.index), nil
	case OpCheckcast:
		return NewCheckCast(r.index), nil
	case OpInstanceof:
		return NewInstanceOf(r.index), nil
	}
	return nil, fmt.Errorf("insn: build: %s: %w", r.op, ErrUnsupportedOpcode)
}

// hasVariant reports whether Build can produce an instruction for op.
func hasVariant(op Opcode) bool {
	switch op {
	case OpGetfield, OpPutfield, OpGetstatic, OpPutstatic,
		OpInvokevirtual, OpInvokespecial, OpInvokestatic, OpInvokeinterface,
		OpNew, OpCheckcast, OpInstanceof, OpArraylength:
		return true
	}
	return false
}
