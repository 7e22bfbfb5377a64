// Package insn models JVM bytecode instructions as a closed set of typed,
// immutable variants.
//
// Every variant answers three independent questions:
//
//   - Stack effect: how many operand-stack words it consumes and produces.
//     Variants whose effect depends on the referenced field or method take a
//     Resolver and ask it for the entry's value category.
//   - Exceptions: which linkage errors and run-time exceptions it may raise,
//     composed from the bundles in package excs.
//   - Dispatch: which Visitor callbacks it receives, and in what order.
//
// # Capabilities
//
// A variant's participation in those protocols is structural: it implements
// the matching optional interface (ExceptionThrower, StackConsumer, ...) and
// reports the same set as a Capability bitset. The bitset drives dispatch:
// Accept walks one global table of levels and calls the callback for every
// level the variant carries, then exactly one callback for the concrete
// variant. The order is
//
//	ExceptionThrower, StackConsumer, StackProducer, TypedInstruction,
//	LoadClass, CPInstruction, FieldOrMethod, FieldInstruction |
//	InvokeInstruction, <concrete>
//
// so a visitor that tracks stack depth sees consumption before production
// and can rely on both having run before the concrete callback.
//
// # Construction
//
// Live instructions come from the New* constructors. Decoders populate a Raw
// field by field and call Build once every operand is known; Decode and
// UnmarshalListing in package wire go through that path. There are no
// setters: changing an operand means building a new instruction.
// A zero-value variant still reports its own opcode; its index is 0,
// which never resolves.
package insn
