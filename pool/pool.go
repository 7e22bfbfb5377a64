// Package pool provides a read-only constant pool that resolves the
// indices carried by instructions in package insn.
package pool

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chazu/jbc/insn"
)

var (
	ErrZeroIndex      = errors.New("constant-pool index 0 is reserved")
	ErrDuplicateIndex = errors.New("duplicate constant-pool index")
)

// Pool maps constant-pool indices to resolved entries. A Pool never
// changes after Build and may be shared between goroutines.
type Pool struct {
	entries map[uint16]insn.Descriptor
}

var _ insn.Resolver = (*Pool)(nil)

// Resolve returns the entry at index.
func (p *Pool) Resolve(index uint16) (insn.Descriptor, error) {
	d, ok := p.entries[index]
	if !ok {
		return insn.Descriptor{}, fmt.Errorf("pool: no entry at #%d: %w", index, insn.ErrUnresolvedReference)
	}
	return d, nil
}

// Len returns the number of entries.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Indices returns every populated index in ascending order.
func (p *Pool) Indices() []uint16 {
	out := make([]uint16, 0, len(p.entries))
	for i := range p.entries {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// ---------------------------------------------------------------------------
// Builder
// ---------------------------------------------------------------------------

// Builder collects entries for a Pool. Descriptors are checked by Build.
type Builder struct {
	pending []insn.Descriptor
	indices []uint16
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(index uint16, d insn.Descriptor) *Builder {
	b.indices = append(b.indices, index)
	b.pending = append(b.pending, d)
	return b
}

// Class adds a Class entry. name is an internal name such as
// java/lang/String, or an array descriptor such as [I.
func (b *Builder) Class(index uint16, name string) *Builder {
	return b.add(index, insn.Descriptor{Kind: insn.RefClass, Class: name})
}

// Field adds a Fieldref entry.
func (b *Builder) Field(index uint16, class, name, sig string) *Builder {
	return b.add(index, insn.Descriptor{Kind: insn.RefField, Class: class, Name: name, Signature: sig})
}

// Method adds a Methodref entry.
func (b *Builder) Method(index uint16, class, name, sig string) *Builder {
	return b.add(index, insn.Descriptor{Kind: insn.RefMethod, Class: class, Name: name, Signature: sig})
}

// InterfaceMethod adds an InterfaceMethodref entry.
func (b *Builder) InterfaceMethod(index uint16, class, name, sig string) *Builder {
	return b.add(index, insn.Descriptor{Kind: insn.RefInterfaceMethod, Class: class, Name: name, Signature: sig})
}

// Build checks every entry, computes word counts from the signatures and
// returns the pool. It stops at the first bad entry.
func (b *Builder) Build() (*Pool, error) {
	p := &Pool{entries: make(map[uint16]insn.Descriptor, len(b.pending))}
	for i, d := range b.pending {
		index := b.indices[i]
		if index == 0 {
			return nil, fmt.Errorf("pool: %s %s: %w", d.Kind, d.Class, ErrZeroIndex)
		}
		if prev, ok := p.entries[index]; ok {
			return nil, fmt.Errorf("pool: #%d: %s already holds %s: %w", index, prev.Kind, prev.Class, ErrDuplicateIndex)
		}
		full, err := complete(d)
		if err != nil {
			return nil, fmt.Errorf("pool: #%d: %w", index, err)
		}
		p.entries[index] = full
	}
	return p, nil
}

// complete validates d and fills in Category and ArgWords.
func complete(d insn.Descriptor) (insn.Descriptor, error) {
	if err := checkClassName(d.Class); err != nil {
		return d, err
	}
	switch d.Kind {
	case insn.RefClass:
		return d, nil
	case insn.RefField:
		if d.Name == "" {
			return d, fmt.Errorf("%s %s: empty name: %w", d.Kind, d.Class, ErrBadDescriptor)
		}
		n, err := FieldCategory(d.Signature)
		if err != nil {
			return d, err
		}
		d.Category = n
	default:
		if d.Name == "" {
			return d, fmt.Errorf("%s %s: empty name: %w", d.Kind, d.Class, ErrBadDescriptor)
		}
		args, ret, err := MethodWords(d.Signature)
		if err != nil {
			return d, err
		}
		d.ArgWords, d.Category = args, ret
	}
	return d, nil
}
