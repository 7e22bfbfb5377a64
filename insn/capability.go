package insn

import "strings"

// Capability is a set of protocol levels an instruction variant takes part
// in. The first five bits are structural capabilities; the rest are
// refinement levels, from most general to most specific.
type Capability uint16

const (
	CapExceptionThrower Capability = 1 << iota
	CapStackConsumer
	CapStackProducer
	CapTyped
	CapLoadClass
	CapConstantPool
	CapFieldOrMethod
	CapField
	CapInvoke
)

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapExceptionThrower, "ExceptionThrower"},
	{CapStackConsumer, "StackConsumer"},
	{CapStackProducer, "StackProducer"},
	{CapTyped, "Typed"},
	{CapLoadClass, "LoadClass"},
	{CapConstantPool, "ConstantPool"},
	{CapFieldOrMethod, "FieldOrMethod"},
	{CapField, "Field"},
	{CapInvoke, "Invoke"},
}

// Common capability sets.
const (
	poolCaps   = CapExceptionThrower | CapTyped | CapLoadClass | CapConstantPool
	memberCaps = poolCaps | CapFieldOrMethod

	getFieldCaps  = memberCaps | CapField | CapStackConsumer | CapStackProducer
	putFieldCaps  = memberCaps | CapField | CapStackConsumer
	getStaticCaps = memberCaps | CapField | CapStackProducer
	putStaticCaps = memberCaps | CapField | CapStackConsumer
	invokeCaps    = memberCaps | CapInvoke | CapStackConsumer | CapStackProducer
	newCaps       = poolCaps | CapStackProducer
	classTestCaps = poolCaps | CapStackConsumer | CapStackProducer
	arrayLenCaps  = CapExceptionThrower | CapStackConsumer | CapStackProducer
)

// Has reports whether every bit of other is set in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// String lists the set members in dispatch order, joined by "|".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, cn := range capabilityNames {
		if c.Has(cn.cap) {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}
