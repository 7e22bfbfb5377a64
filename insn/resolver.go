package insn

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Resolver looks up constant-pool entries. Implementations must be safe for
// concurrent use if instructions are analyzed from several goroutines; this
// package only reads through it.
type Resolver interface {
	// Resolve returns the entry at index. Missing or unusable entries fail
	// with an error matching ErrUnresolvedReference.
	Resolve(index uint16) (Descriptor, error)
}

// RefKind is the kind of a resolved constant-pool entry.
type RefKind uint8

const (
	RefClass RefKind = iota + 1
	RefField
	RefMethod
	RefInterfaceMethod
)

func (k RefKind) String() string {
	switch k {
	case RefClass:
		return "Class"
	case RefField:
		return "Fieldref"
	case RefMethod:
		return "Methodref"
	case RefInterfaceMethod:
		return "InterfaceMethodref"
	default:
		return fmt.Sprintf("RefKind(%d)", uint8(k))
	}
}

// Descriptor is a resolved constant-pool entry.
type Descriptor struct {
	Kind      RefKind
	Class     string // internal class name, e.g. java/lang/String; array classes keep their descriptor form
	Name      string // member name; empty for class entries
	Signature string // field or method descriptor; empty for class entries
	Category  int    // words of the field value or method return; 0 for void
	ArgWords  int    // methods only: words of the declared arguments
}

// resolve fetches index through r and checks the entry kind. Every failure
// matches ErrUnresolvedReference.
func resolve(r Resolver, op Opcode, index uint16, want ...RefKind) (Descriptor, error) {
	if r == nil {
		return Descriptor{}, fmt.Errorf("insn: %s #%d: no resolver: %w", op, index, ErrUnresolvedReference)
	}
	d, err := r.Resolve(index)
	if err != nil {
		if errors.Is(err, ErrUnresolvedReference) {
			return Descriptor{}, fmt.Errorf("insn: %s #%d: %w", op, index, err)
		}
		return Descriptor{}, fmt.Errorf("insn: %s #%d: %w: %w", op, index, ErrUnresolvedReference, err)
	}
	if !slices.Contains(want, d.Kind) {
		return Descriptor{}, fmt.Errorf("insn: %s #%d: %s entry, want %s: %w",
			op, index, d.Kind, kindList(want), ErrUnresolvedReference)
	}
	return d, nil
}

func kindList(kinds []RefKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}
