package insn

import "fmt"

// Visitor receives one callback per protocol level an instruction takes part
// in, followed by one callback for its concrete variant, in the order given
// in the package documentation. Returning a non-nil error stops dispatch
// and the error is handed back to the caller of Accept as is.
type Visitor interface {
	VisitExceptionThrower(in ExceptionThrower) error
	VisitStackConsumer(in StackConsumer) error
	VisitStackProducer(in StackProducer) error
	VisitTypedInstruction(in TypedInstruction) error
	VisitLoadClass(in ClassLoader) error
	VisitCPInstruction(in CPInstruction) error
	VisitFieldOrMethod(in FieldOrMethod) error
	VisitFieldInstruction(in FieldInstruction) error
	VisitInvokeInstruction(in InvokeInstruction) error

	VisitGetField(in *GetField) error
	VisitPutField(in *PutField) error
	VisitGetStatic(in *GetStatic) error
	VisitPutStatic(in *PutStatic) error
	VisitInvokeVirtual(in *InvokeVirtual) error
	VisitInvokeSpecial(in *InvokeSpecial) error
	VisitInvokeStatic(in *InvokeStatic) error
	VisitInvokeInterface(in *InvokeInterface) error
	VisitNew(in *New) error
	VisitCheckCast(in *CheckCast) error
	VisitInstanceOf(in *InstanceOf) error
	VisitArrayLength(in *ArrayLength) error
}

// EmptyVisitor implements every Visitor callback as a no-op. Embed it and
// override the levels of interest.
type EmptyVisitor struct{}

func (EmptyVisitor) VisitExceptionThrower(ExceptionThrower) error   { return nil }
func (EmptyVisitor) VisitStackConsumer(StackConsumer) error         { return nil }
func (EmptyVisitor) VisitStackProducer(StackProducer) error         { return nil }
func (EmptyVisitor) VisitTypedInstruction(TypedInstruction) error   { return nil }
func (EmptyVisitor) VisitLoadClass(ClassLoader) error               { return nil }
func (EmptyVisitor) VisitCPInstruction(CPInstruction) error         { return nil }
func (EmptyVisitor) VisitFieldOrMethod(FieldOrMethod) error         { return nil }
func (EmptyVisitor) VisitFieldInstruction(FieldInstruction) error   { return nil }
func (EmptyVisitor) VisitInvokeInstruction(InvokeInstruction) error { return nil }
func (EmptyVisitor) VisitGetField(*GetField) error                  { return nil }
func (EmptyVisitor) VisitPutField(*PutField) error                  { return nil }
func (EmptyVisitor) VisitGetStatic(*GetStatic) error                { return nil }
func (EmptyVisitor) VisitPutStatic(*PutStatic) error                { return nil }
func (EmptyVisitor) VisitInvokeVirtual(*InvokeVirtual) error        { return nil }
func (EmptyVisitor) VisitInvokeSpecial(*InvokeSpecial) error        { return nil }
func (EmptyVisitor) VisitInvokeStatic(*InvokeStatic) error          { return nil }
func (EmptyVisitor) VisitInvokeInterface(*InvokeInterface) error    { return nil }
func (EmptyVisitor) VisitNew(*New) error                            { return nil }
func (EmptyVisitor) VisitCheckCast(*CheckCast) error                { return nil }
func (EmptyVisitor) VisitInstanceOf(*InstanceOf) error              { return nil }
func (EmptyVisitor) VisitArrayLength(*ArrayLength) error            { return nil }

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

type dispatchStep struct {
	cap   Capability
	visit func(v Visitor, in Instruction) error
}

// dispatchOrder is the callback order for every variant. Structural
// capabilities come first, then refinement levels from general to specific.
// Visitors depend on this order; do not rearrange it.
var dispatchOrder = []dispatchStep{
	{CapExceptionThrower, func(v Visitor, in Instruction) error { return v.VisitExceptionThrower(in.(ExceptionThrower)) }},
	{CapStackConsumer, func(v Visitor, in Instruction) error { return v.VisitStackConsumer(in.(StackConsumer)) }},
	{CapStackProducer, func(v Visitor, in Instruction) error { return v.VisitStackProducer(in.(StackProducer)) }},
	{CapTyped, func(v Visitor, in Instruction) error { return v.VisitTypedInstruction(in.(TypedInstruction)) }},
	{CapLoadClass, func(v Visitor, in Instruction) error { return v.VisitLoadClass(in.(ClassLoader)) }},
	{CapConstantPool, func(v Visitor, in Instruction) error { return v.VisitCPInstruction(in.(CPInstruction)) }},
	{CapFieldOrMethod, func(v Visitor, in Instruction) error { return v.VisitFieldOrMethod(in.(FieldOrMethod)) }},
	{CapField, func(v Visitor, in Instruction) error { return v.VisitFieldInstruction(in.(FieldInstruction)) }},
	{CapInvoke, func(v Visitor, in Instruction) error { return v.VisitInvokeInstruction(in.(InvokeInstruction)) }},
}

// accept runs the level callbacks for in's capabilities, then its concrete
// callback. The first error ends dispatch.
func accept(in Instruction, v Visitor) error {
	caps := in.Capabilities()
	for _, step := range dispatchOrder {
		if !caps.Has(step.cap) {
			continue
		}
		if err := step.visit(v, in); err != nil {
			return err
		}
	}
	return visitConcrete(in, v)
}

func visitConcrete(in Instruction, v Visitor) error {
	switch in := in.(type) {
	case *GetField:
		return v.VisitGetField(in)
	case *PutField:
		return v.VisitPutField(in)
	case *GetStatic:
		return v.VisitGetStatic(in)
	case *PutStatic:
		return v.VisitPutStatic(in)
	case *InvokeVirtual:
		return v.VisitInvokeVirtual(in)
	case *InvokeSpecial:
		return v.VisitInvokeSpecial(in)
	case *InvokeStatic:
		return v.VisitInvokeStatic(in)
	case *InvokeInterface:
		return v.VisitInvokeInterface(in)
	case *New:
		return v.VisitNew(in)
	case *CheckCast:
		return v.VisitCheckCast(in)
	case *InstanceOf:
		return v.VisitInstanceOf(in)
	case *ArrayLength:
		return v.VisitArrayLength(in)
	}
	panic(fmt.Sprintf("insn: no concrete callback for %T", in))
}
