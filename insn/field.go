package insn

import "github.com/chazu/jbc/excs"

// GetField - fetch field from object
//
//	Stack: ..., objectref -> ..., value
//	   OR: ..., objectref -> ..., value.word1, value.word2
type GetField struct {
	fieldInsn[getfieldOp]
}

// NewGetField returns a getfield referencing the Fieldref at index.
func NewGetField(index uint16) *GetField {
	return &GetField{newField[getfieldOp](index)}
}

func (g *GetField) Capabilities() Capability { return getFieldCaps }

func (g *GetField) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution,
		excs.NullPointerException,
		excs.IncompatibleClassChangeError)
}

// ConsumedWords is always 1, the object reference, but still requires the
// index to resolve to a field.
func (g *GetField) ConsumedWords(r Resolver) (int, error) {
	if _, err := g.Reference(r); err != nil {
		return 0, err
	}
	return 1, nil
}

func (g *GetField) ProducedWords(r Resolver) (int, error) {
	return g.FieldSize(r)
}

func (g *GetField) Accept(v Visitor) error { return accept(g, v) }

// PutField - set field in object
//
//	Stack: ..., objectref, value -> ...
//	   OR: ..., objectref, value.word1, value.word2 -> ...
type PutField struct {
	fieldInsn[putfieldOp]
}

// NewPutField returns a putfield referencing the Fieldref at index.
func NewPutField(index uint16) *PutField {
	return &PutField{newField[putfieldOp](index)}
}

func (p *PutField) Capabilities() Capability { return putFieldCaps }

func (p *PutField) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution,
		excs.NullPointerException,
		excs.IncompatibleClassChangeError)
}

func (p *PutField) ConsumedWords(r Resolver) (int, error) {
	size, err := p.FieldSize(r)
	if err != nil {
		return 0, err
	}
	return 1 + size, nil
}

func (p *PutField) Accept(v Visitor) error { return accept(p, v) }

// GetStatic - fetch static field from class
//
//	Stack: ... -> ..., value
//	   OR: ... -> ..., value.word1, value.word2
type GetStatic struct {
	fieldInsn[getstaticOp]
}

// NewGetStatic returns a getstatic referencing the Fieldref at index.
func NewGetStatic(index uint16) *GetStatic {
	return &GetStatic{newField[getstaticOp](index)}
}

func (g *GetStatic) Capabilities() Capability { return getStaticCaps }

// Exceptions omits NullPointerException: no receiver is dereferenced.
func (g *GetStatic) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution)
}

func (g *GetStatic) ProducedWords(r Resolver) (int, error) {
	return g.FieldSize(r)
}

func (g *GetStatic) Accept(v Visitor) error { return accept(g, v) }

// PutStatic - set static field in class
//
//	Stack: ..., value -> ...
//	   OR: ..., value.word1, value.word2 -> ...
type PutStatic struct {
	fieldInsn[putstaticOp]
}

// NewPutStatic returns a putstatic referencing the Fieldref at index.
func NewPutStatic(index uint16) *PutStatic {
	return &PutStatic{newField[putstaticOp](index)}
}

func (p *PutStatic) Capabilities() Capability { return putStaticCaps }

func (p *PutStatic) Exceptions() []excs.Kind {
	return excs.Compose(excs.FieldAndMethodResolution)
}

func (p *PutStatic) ConsumedWords(r Resolver) (int, error) {
	return p.FieldSize(r)
}

func (p *PutStatic) Accept(v Visitor) error { return accept(p, v) }
