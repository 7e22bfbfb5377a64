package insn

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder logs every callback it receives and can fail on one of them.
type recorder struct {
	calls  []string
	failOn string
	err    error
}

func (r *recorder) note(name string) error {
	r.calls = append(r.calls, name)
	if name == r.failOn {
		return r.err
	}
	return nil
}

func (r *recorder) VisitExceptionThrower(ExceptionThrower) error { return r.note("ExceptionThrower") }
func (r *recorder) VisitStackConsumer(StackConsumer) error       { return r.note("StackConsumer") }
func (r *recorder) VisitStackProducer(StackProducer) error       { return r.note("StackProducer") }
func (r *recorder) VisitTypedInstruction(TypedInstruction) error { return r.note("TypedInstruction") }
func (r *recorder) VisitLoadClass(ClassLoader) error             { return r.note("LoadClass") }
func (r *recorder) VisitCPInstruction(CPInstruction) error       { return r.note("CPInstruction") }
func (r *recorder) VisitFieldOrMethod(FieldOrMethod) error       { return r.note("FieldOrMethod") }
func (r *recorder) VisitFieldInstruction(FieldInstruction) error { return r.note("FieldInstruction") }
func (r *recorder) VisitInvokeInstruction(InvokeInstruction) error {
	return r.note("InvokeInstruction")
}
func (r *recorder) VisitGetField(*GetField) error               { return r.note("GETFIELD") }
func (r *recorder) VisitPutField(*PutField) error               { return r.note("PUTFIELD") }
func (r *recorder) VisitGetStatic(*GetStatic) error             { return r.note("GETSTATIC") }
func (r *recorder) VisitPutStatic(*PutStatic) error             { return r.note("PUTSTATIC") }
func (r *recorder) VisitInvokeVirtual(*InvokeVirtual) error     { return r.note("INVOKEVIRTUAL") }
func (r *recorder) VisitInvokeSpecial(*InvokeSpecial) error     { return r.note("INVOKESPECIAL") }
func (r *recorder) VisitInvokeStatic(*InvokeStatic) error       { return r.note("INVOKESTATIC") }
func (r *recorder) VisitInvokeInterface(*InvokeInterface) error { return r.note("INVOKEINTERFACE") }
func (r *recorder) VisitNew(*New) error                         { return r.note("NEW") }
func (r *recorder) VisitCheckCast(*CheckCast) error             { return r.note("CHECKCAST") }
func (r *recorder) VisitInstanceOf(*InstanceOf) error           { return r.note("INSTANCEOF") }
func (r *recorder) VisitArrayLength(*ArrayLength) error         { return r.note("ARRAYLENGTH") }

func TestAcceptOrder(t *testing.T) {
	tests := []struct {
		in   Instruction
		want []string
	}{
		{NewGetField(5), []string{
			"ExceptionThrower", "StackConsumer", "StackProducer", "TypedInstruction",
			"LoadClass", "CPInstruction", "FieldOrMethod", "FieldInstruction", "GETFIELD",
		}},
		{NewPutField(5), []string{
			"ExceptionThrower", "StackConsumer", "TypedInstruction",
			"LoadClass", "CPInstruction", "FieldOrMethod", "FieldInstruction", "PUTFIELD",
		}},
		{NewGetStatic(5), []string{
			"ExceptionThrower", "StackProducer", "TypedInstruction",
			"LoadClass", "CPInstruction", "FieldOrMethod", "FieldInstruction", "GETSTATIC",
		}},
		{NewPutStatic(5), []string{
			"ExceptionThrower", "StackConsumer", "TypedInstruction",
			"LoadClass", "CPInstruction", "FieldOrMethod", "FieldInstruction", "PUTSTATIC",
		}},
		{NewInvokeInterface(5, 1), []string{
			"ExceptionThrower", "StackConsumer", "StackProducer", "TypedInstruction",
			"LoadClass", "CPInstruction", "FieldOrMethod", "InvokeInstruction", "INVOKEINTERFACE",
		}},
		{NewNew(5), []string{
			"ExceptionThrower", "StackProducer", "TypedInstruction", "LoadClass", "CPInstruction", "NEW",
		}},
		{NewInstanceOf(5), []string{
			"ExceptionThrower", "StackConsumer", "StackProducer", "TypedInstruction",
			"LoadClass", "CPInstruction", "INSTANCEOF",
		}},
		{NewArrayLength(), []string{
			"ExceptionThrower", "StackConsumer", "StackProducer", "ARRAYLENGTH",
		}},
	}

	for _, tt := range tests {
		rec := &recorder{}
		if err := tt.in.Accept(rec); err != nil {
			t.Fatalf("%s: Accept: %v", Name(tt.in), err)
		}
		if diff := cmp.Diff(tt.want, rec.calls); diff != "" {
			t.Errorf("%s callback order mismatch (-want +got):\n%s", Name(tt.in), diff)
		}
	}
}

func TestAcceptEndsWithExactlyOneConcreteCallback(t *testing.T) {
	levels := map[string]bool{
		"ExceptionThrower": true, "StackConsumer": true, "StackProducer": true,
		"TypedInstruction": true, "LoadClass": true, "CPInstruction": true,
		"FieldOrMethod": true, "FieldInstruction": true, "InvokeInstruction": true,
	}
	for _, in := range allVariants() {
		rec := &recorder{}
		if err := in.Accept(rec); err != nil {
			t.Fatalf("%s: Accept: %v", Name(in), err)
		}
		concrete := 0
		for _, c := range rec.calls {
			if !levels[c] {
				concrete++
			}
		}
		last := rec.calls[len(rec.calls)-1]
		if concrete != 1 || levels[last] {
			t.Errorf("%s: calls %v, want exactly one concrete callback, last", Name(in), rec.calls)
		}
	}
}

func TestAcceptPropagatesVisitorError(t *testing.T) {
	boom := errors.New("stack overflow in tracker")
	rec := &recorder{failOn: "StackProducer", err: boom}

	err := NewGetField(5).Accept(rec)
	if err != boom {
		t.Fatalf("Accept err = %v, want the visitor's error unmodified", err)
	}
	want := []string{"ExceptionThrower", "StackConsumer", "StackProducer"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls after failure mismatch (-want +got):\n%s", diff)
	}
}

func TestAcceptConcreteError(t *testing.T) {
	boom := errors.New("refused")
	rec := &recorder{failOn: "ARRAYLENGTH", err: boom}
	if err := NewArrayLength().Accept(rec); err != boom {
		t.Errorf("Accept err = %v, want %v", err, boom)
	}
}

// operandVisitor captures what a visitor can observe about the operands.
type operandVisitor struct {
	EmptyVisitor
	seen []uint16
	ops  []Opcode
}

func (o *operandVisitor) VisitCPInstruction(in CPInstruction) error {
	o.seen = append(o.seen, in.Index())
	o.ops = append(o.ops, in.Opcode())
	return nil
}

func (o *operandVisitor) VisitGetField(in *GetField) error {
	o.seen = append(o.seen, in.Index())
	o.ops = append(o.ops, in.Opcode())
	return nil
}

func TestAcceptDoesNotMutate(t *testing.T) {
	g := NewGetField(5)
	v := &operandVisitor{}
	if err := g.Accept(v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{5, 5}, v.seen); diff != "" {
		t.Errorf("indices seen mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Opcode{OpGetfield, OpGetfield}, v.ops); diff != "" {
		t.Errorf("opcodes seen mismatch (-want +got):\n%s", diff)
	}
	if g.Index() != 5 || g.Opcode() != OpGetfield {
		t.Errorf("instruction changed by dispatch: %s", Format(g))
	}
}

func TestEmptyVisitorAcceptsAll(t *testing.T) {
	for _, in := range allVariants() {
		if err := in.Accept(EmptyVisitor{}); err != nil {
			t.Errorf("%s: Accept(EmptyVisitor) = %v", Name(in), err)
		}
	}
}
