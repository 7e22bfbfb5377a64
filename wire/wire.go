// Package wire encodes decoded instruction listings as canonical CBOR.
//
// Encoding is deterministic: the same listing always produces the same
// bytes, so a listing's hash can be used to identify it.
package wire

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/chazu/jbc/insn"
	"github.com/fxamacker/cbor/v2"
)

// ErrHashMismatch reports a listing whose content does not match the
// expected hash.
var ErrHashMismatch = errors.New("listing hash mismatch")

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Entry is one encoded instruction. Index and Count are zero when the
// opcode has no such operand.
type Entry struct {
	Opcode byte   `cbor:"1,keyasint"`
	Index  uint16 `cbor:"2,keyasint,omitempty"`
	Count  uint8  `cbor:"3,keyasint,omitempty"`
}

// Listing is the instruction sequence of one method body.
type Listing struct {
	Method string  `cbor:"1,keyasint"`
	Code   []Entry `cbor:"2,keyasint"`
}

// EntryOf returns the entry describing in.
func EntryOf(in insn.Instruction) Entry {
	e := Entry{Opcode: byte(in.Opcode())}
	if cp, ok := in.(insn.CPInstruction); ok {
		e.Index = cp.Index()
	}
	if ii, ok := in.(*insn.InvokeInterface); ok {
		e.Count = ii.Count()
	}
	return e
}

// NewListing describes insts as the body of method.
func NewListing(method string, insts []insn.Instruction) *Listing {
	l := &Listing{Method: method, Code: make([]Entry, len(insts))}
	for i, in := range insts {
		l.Code[i] = EntryOf(in)
	}
	return l
}

// Instructions rebuilds the listing's instructions. Entries go through
// insn.Raw and are held to the same checks as decoded bytecode; operands
// the opcode does not take are rejected.
func (l *Listing) Instructions() ([]insn.Instruction, error) {
	out := make([]insn.Instruction, len(l.Code))
	var raw insn.Raw
	for i, e := range l.Code {
		raw.Reset()
		raw.SetOpcode(insn.Opcode(e.Opcode))
		if e.Index != 0 {
			raw.SetIndex(e.Index)
		}
		if e.Count != 0 {
			raw.SetCount(e.Count)
		}
		in, err := raw.Build()
		if err != nil {
			return nil, fmt.Errorf("wire: %s entry %d: %w", l.Method, i, err)
		}
		if EntryOf(in) != e {
			return nil, fmt.Errorf("wire: %s entry %d: stray operands for %s: %w",
				l.Method, i, insn.Name(in), insn.ErrMalformed)
		}
		out[i] = in
	}
	return out, nil
}

// Hash returns the SHA-256 of the listing's canonical encoding.
func (l *Listing) Hash() ([32]byte, error) {
	data, err := cborEncMode.Marshal(l)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

// MarshalListing serializes the body of method to CBOR bytes.
func MarshalListing(method string, insts []insn.Instruction) ([]byte, error) {
	return cborEncMode.Marshal(NewListing(method, insts))
}

// UnmarshalListing deserializes a listing and rebuilds its instructions.
func UnmarshalListing(data []byte) (string, []insn.Instruction, error) {
	l, err := decodeListing(data)
	if err != nil {
		return "", nil, err
	}
	insts, err := l.Instructions()
	if err != nil {
		return "", nil, err
	}
	return l.Method, insts, nil
}

func decodeListing(data []byte) (*Listing, error) {
	var l Listing
	if err := cbor.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("wire: unmarshal listing: %w", err)
	}
	return &l, nil
}

// VerifyListing checks that data decodes to a listing whose hash is want.
func VerifyListing(data []byte, want [32]byte) error {
	l, err := decodeListing(data)
	if err != nil {
		return err
	}
	got, err := l.Hash()
	if err != nil {
		return fmt.Errorf("wire: hash listing: %w", err)
	}
	if got != want {
		return fmt.Errorf("wire: %s: got %x, want %x: %w", l.Method, got[:8], want[:8], ErrHashMismatch)
	}
	return nil
}
