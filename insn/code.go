package insn

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Reader: decodes a code array into instructions
// ---------------------------------------------------------------------------

// Reader reads instructions from a JVM code array. Operands are big-endian.
type Reader struct {
	code []byte
	pos  int
}

// NewReader creates a reader positioned at the start of code.
func NewReader(code []byte) *Reader {
	return &Reader{code: code}
}

// Position returns the current read offset.
func (r *Reader) Position() int {
	return r.pos
}

// HasMore returns true if there are more bytes to read.
func (r *Reader) HasMore() bool {
	return r.pos < len(r.code)
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.code) {
		return 0, ErrTruncated
	}
	b := r.code[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a big-endian 16-bit operand.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.code) {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint16(r.code[r.pos:])
	r.pos += 2
	return v, nil
}

// Next decodes the instruction at the current position.
func (r *Reader) Next() (Instruction, error) {
	start := r.pos
	in, err := r.next()
	if err != nil {
		return nil, fmt.Errorf("insn: decode at %d: %w", start, err)
	}
	return in, nil
}

func (r *Reader) next() (Instruction, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	op := Opcode(b)

	var raw Raw
	raw.SetOpcode(op)

	switch op {
	case OpGetfield, OpPutfield, OpGetstatic, OpPutstatic,
		OpInvokevirtual, OpInvokespecial, OpInvokestatic,
		OpNew, OpCheckcast, OpInstanceof:
		index, err := r.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		raw.SetIndex(index)

	case OpInvokeinterface:
		index, err := r.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		count, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		zero, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if zero != 0 {
			return nil, fmt.Errorf("%s: fourth operand byte is %d, want 0: %w", op, zero, ErrMalformed)
		}
		raw.SetIndex(index)
		raw.SetCount(count)
	}

	return raw.Build()
}

// Decode reads every instruction in code.
func Decode(code []byte) ([]Instruction, error) {
	r := NewReader(code)
	var out []Instruction
	for r.HasMore() {
		in, err := r.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Builder: encodes instructions into a code array
// ---------------------------------------------------------------------------

// Builder accumulates encoded instructions.
type Builder struct {
	bytes []byte
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{bytes: make([]byte, 0, 64)}
}

// Bytes returns the encoded code array.
func (b *Builder) Bytes() []byte {
	return b.bytes
}

// Len returns the current length, which is also the offset of the next
// instruction.
func (b *Builder) Len() int {
	return len(b.bytes)
}

// Emit appends the encoding of in.
func (b *Builder) Emit(in Instruction) {
	switch in := in.(type) {
	case *InvokeInterface:
		b.emitUint16(in.Opcode(), in.Index())
		b.bytes = append(b.bytes, in.Count(), 0)
	case CPInstruction:
		b.emitUint16(in.Opcode(), in.Index())
	default:
		b.bytes = append(b.bytes, byte(in.Opcode()))
	}
}

func (b *Builder) emitUint16(op Opcode, operand uint16) {
	b.bytes = append(b.bytes, byte(op), byte(operand>>8), byte(operand))
}

// Encode returns the code array for insts.
func Encode(insts []Instruction) []byte {
	b := NewBuilder()
	for _, in := range insts {
		b.Emit(in)
	}
	return b.Bytes()
}

// ---------------------------------------------------------------------------
// Disassembly
// ---------------------------------------------------------------------------

// Disassemble returns one line per instruction in code, prefixed with its
// offset.
func Disassemble(code []byte) (string, error) {
	r := NewReader(code)
	var sb strings.Builder
	for r.HasMore() {
		pos := r.Position()
		in, err := r.Next()
		if err != nil {
			return sb.String(), err
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%04d  %s", pos, Format(in))
	}
	return sb.String(), nil
}
