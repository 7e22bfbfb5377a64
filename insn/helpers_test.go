package insn

import "fmt"

// testPool is a map-backed Resolver.
type testPool map[uint16]Descriptor

func (p testPool) Resolve(index uint16) (Descriptor, error) {
	d, ok := p[index]
	if !ok {
		return Descriptor{}, fmt.Errorf("test pool: no entry %d: %w", index, ErrUnresolvedReference)
	}
	return d, nil
}

const (
	idxIntField    = 1
	idxLongField   = 2
	idxVirtual     = 3
	idxStaticVoid  = 4
	idxIface       = 5
	idxClass       = 6
	idxObjArray    = 7
	idxIntArray    = 8
	idxDoubleField = 9
	idxMissing     = 99
)

var pool = testPool{
	idxIntField: {Kind: RefField, Class: "com/example/Point", Name: "x",
		Signature: "I", Category: 1},
	idxLongField: {Kind: RefField, Class: "com/example/Clock", Name: "nanos",
		Signature: "J", Category: 2},
	idxDoubleField: {Kind: RefField, Class: "java/lang/Math", Name: "PI",
		Signature: "D", Category: 2},
	idxVirtual: {Kind: RefMethod, Class: "com/example/Calc", Name: "mix",
		Signature: "(IJ)D", Category: 2, ArgWords: 3},
	idxStaticVoid: {Kind: RefMethod, Class: "com/example/Main", Name: "run",
		Signature: "()V", Category: 0, ArgWords: 0},
	idxIface: {Kind: RefInterfaceMethod, Class: "java/util/List", Name: "get",
		Signature: "(I)Ljava/lang/Object;", Category: 1, ArgWords: 1},
	idxClass:    {Kind: RefClass, Class: "java/lang/String"},
	idxObjArray: {Kind: RefClass, Class: "[[Ljava/lang/Object;"},
	idxIntArray: {Kind: RefClass, Class: "[I"},
}

// allVariants returns one instance of every concrete variant.
func allVariants() []Instruction {
	return []Instruction{
		NewGetField(idxIntField),
		NewPutField(idxIntField),
		NewGetStatic(idxIntField),
		NewPutStatic(idxIntField),
		NewInvokeVirtual(idxVirtual),
		NewInvokeSpecial(idxVirtual),
		NewInvokeStatic(idxStaticVoid),
		NewInvokeInterface(idxIface, 2),
		NewNew(idxClass),
		NewCheckCast(idxClass),
		NewInstanceOf(idxClass),
		NewArrayLength(),
	}
}
