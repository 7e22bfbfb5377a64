package insn

import (
	"errors"
	"fmt"

	"github.com/chazu/jbc/excs"
)

var (
	// ErrUnresolvedReference reports a constant-pool index that does not
	// resolve to an entry of the kind the instruction needs.
	ErrUnresolvedReference = errors.New("unresolved constant-pool reference")
	ErrUnknownOpcode       = errors.New("unknown opcode")
	ErrUnsupportedOpcode   = errors.New("no instruction variant for opcode")
	ErrIncomplete          = errors.New("incomplete instruction")
	ErrTruncated           = errors.New("truncated code")
	ErrMalformed           = errors.New("malformed instruction")
)

// Instruction is implemented by every variant in this package. The set is
// closed: Accept only knows the variants declared here.
type Instruction interface {
	Opcode() Opcode
	Capabilities() Capability
	Accept(v Visitor) error
}

// ExceptionThrower is implemented by instructions that may raise an
// exception during linking or execution.
type ExceptionThrower interface {
	Instruction
	Exceptions() []excs.Kind
}

// StackConsumer is implemented by instructions that pop operand-stack words.
type StackConsumer interface {
	Instruction
	ConsumedWords(r Resolver) (int, error)
}

// StackProducer is implemented by instructions that push operand-stack words.
type StackProducer interface {
	Instruction
	ProducedWords(r Resolver) (int, error)
}

// TypedInstruction is implemented by instructions with an associated type,
// returned as a JVM type descriptor.
type TypedInstruction interface {
	Instruction
	Type(r Resolver) (string, error)
}

// ClassLoader is implemented by instructions that may cause a class to be
// loaded. LoadClassType returns its internal name, or "" when the type is
// primitive.
type ClassLoader interface {
	Instruction
	LoadClassType(r Resolver) (string, error)
}

// CPInstruction is implemented by instructions with a constant-pool operand.
type CPInstruction interface {
	TypedInstruction
	Index() uint16
}

// FieldOrMethod is implemented by instructions referencing a field or method.
type FieldOrMethod interface {
	CPInstruction
	ClassLoader
	Reference(r Resolver) (Descriptor, error)
	ClassName(r Resolver) (string, error)
	MemberName(r Resolver) (string, error)
	Signature(r Resolver) (string, error)
}

// FieldInstruction is implemented by getfield, putfield, getstatic and
// putstatic.
type FieldInstruction interface {
	FieldOrMethod
	FieldSize(r Resolver) (int, error)
}

// InvokeInstruction is implemented by the four invoke variants.
type InvokeInstruction interface {
	FieldOrMethod
	StackConsumer
	StackProducer
	ArgumentWords(r Resolver) (int, error)
	ReturnWords(r Resolver) (int, error)
}

// ---------------------------------------------------------------------------
// Derived attributes
// ---------------------------------------------------------------------------

// Name returns the mnemonic of the instruction's opcode.
func Name(in Instruction) string {
	return in.Opcode().String()
}

// Length returns the encoded size of the instruction in bytes.
func Length(in Instruction) int {
	return in.Opcode().Length()
}

// ExceptionBundle returns the exceptions in may raise, or nil if it is not
// an ExceptionThrower.
func ExceptionBundle(in Instruction) []excs.Kind {
	if et, ok := in.(ExceptionThrower); ok {
		return et.Exceptions()
	}
	return nil
}

// StackEffect returns how many words in pops and pushes.
func StackEffect(in Instruction, r Resolver) (consumed, produced int, err error) {
	if sc, ok := in.(StackConsumer); ok {
		if consumed, err = sc.ConsumedWords(r); err != nil {
			return 0, 0, err
		}
	}
	if sp, ok := in.(StackProducer); ok {
		if produced, err = sp.ProducedWords(r); err != nil {
			return 0, 0, err
		}
	}
	return consumed, produced, nil
}

// Format returns the one-line textual form of in, e.g. "getfield #5".
func Format(in Instruction) string {
	switch in := in.(type) {
	case *InvokeInterface:
		return fmt.Sprintf("%s #%d %d", Name(in), in.Index(), in.Count())
	case CPInstruction:
		return fmt.Sprintf("%s #%d", Name(in), in.Index())
	default:
		return Name(in)
	}
}
