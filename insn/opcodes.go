package insn

import "fmt"

// ---------------------------------------------------------------------------
// Opcode definitions
// ---------------------------------------------------------------------------

// Opcode is the one-byte tag that starts every instruction in a JVM code
// array. Values match the class-file format exactly.
type Opcode byte

// Constants
const (
	OpNop        Opcode = 0x00
	OpAconstNull Opcode = 0x01
	OpIconstM1   Opcode = 0x02
	OpIconst0    Opcode = 0x03
	OpIconst1    Opcode = 0x04
	OpIconst2    Opcode = 0x05
	OpIconst3    Opcode = 0x06
	OpIconst4    Opcode = 0x07
	OpIconst5    Opcode = 0x08
	OpLconst0    Opcode = 0x09
	OpLconst1    Opcode = 0x0A
	OpFconst0    Opcode = 0x0B
	OpFconst1    Opcode = 0x0C
	OpFconst2    Opcode = 0x0D
	OpDconst0    Opcode = 0x0E
	OpDconst1    Opcode = 0x0F
	OpBipush     Opcode = 0x10
	OpSipush     Opcode = 0x11
	OpLdc        Opcode = 0x12
	OpLdcW       Opcode = 0x13
	OpLdc2W      Opcode = 0x14
)

// Loads
const (
	OpIload  Opcode = 0x15
	OpLload  Opcode = 0x16
	OpFload  Opcode = 0x17
	OpDload  Opcode = 0x18
	OpAload  Opcode = 0x19
	OpIload0 Opcode = 0x1A
	OpIload1 Opcode = 0x1B
	OpIload2 Opcode = 0x1C
	OpIload3 Opcode = 0x1D
	OpLload0 Opcode = 0x1E
	OpLload1 Opcode = 0x1F
	OpLload2 Opcode = 0x20
	OpLload3 Opcode = 0x21
	OpFload0 Opcode = 0x22
	OpFload1 Opcode = 0x23
	OpFload2 Opcode = 0x24
	OpFload3 Opcode = 0x25
	OpDload0 Opcode = 0x26
	OpDload1 Opcode = 0x27
	OpDload2 Opcode = 0x28
	OpDload3 Opcode = 0x29
	OpAload0 Opcode = 0x2A
	OpAload1 Opcode = 0x2B
	OpAload2 Opcode = 0x2C
	OpAload3 Opcode = 0x2D
	OpIaload Opcode = 0x2E
	OpLaload Opcode = 0x2F
	OpFaload Opcode = 0x30
	OpDaload Opcode = 0x31
	OpAaload Opcode = 0x32
	OpBaload Opcode = 0x33
	OpCaload Opcode = 0x34
	OpSaload Opcode = 0x35
)

// Stores
const (
	OpIstore  Opcode = 0x36
	OpLstore  Opcode = 0x37
	OpFstore  Opcode = 0x38
	OpDstore  Opcode = 0x39
	OpAstore  Opcode = 0x3A
	OpIstore0 Opcode = 0x3B
	OpIstore1 Opcode = 0x3C
	OpIstore2 Opcode = 0x3D
	OpIstore3 Opcode = 0x3E
	OpLstore0 Opcode = 0x3F
	OpLstore1 Opcode = 0x40
	OpLstore2 Opcode = 0x41
	OpLstore3 Opcode = 0x42
	OpFstore0 Opcode = 0x43
	OpFstore1 Opcode = 0x44
	OpFstore2 Opcode = 0x45
	OpFstore3 Opcode = 0x46
	OpDstore0 Opcode = 0x47
	OpDstore1 Opcode = 0x48
	OpDstore2 Opcode = 0x49
	OpDstore3 Opcode = 0x4A
	OpAstore0 Opcode = 0x4B
	OpAstore1 Opcode = 0x4C
	OpAstore2 Opcode = 0x4D
	OpAstore3 Opcode = 0x4E
	OpIastore Opcode = 0x4F
	OpLastore Opcode = 0x50
	OpFastore Opcode = 0x51
	OpDastore Opcode = 0x52
	OpAastore Opcode = 0x53
	OpBastore Opcode = 0x54
	OpCastore Opcode = 0x55
	OpSastore Opcode = 0x56
)

// Stack
const (
	OpPop    Opcode = 0x57
	OpPop2   Opcode = 0x58
	OpDup    Opcode = 0x59
	OpDupX1  Opcode = 0x5A
	OpDupX2  Opcode = 0x5B
	OpDup2   Opcode = 0x5C
	OpDup2X1 Opcode = 0x5D
	OpDup2X2 Opcode = 0x5E
	OpSwap   Opcode = 0x5F
)

// Math
const (
	OpIadd  Opcode = 0x60
	OpLadd  Opcode = 0x61
	OpFadd  Opcode = 0x62
	OpDadd  Opcode = 0x63
	OpIsub  Opcode = 0x64
	OpLsub  Opcode = 0x65
	OpFsub  Opcode = 0x66
	OpDsub  Opcode = 0x67
	OpImul  Opcode = 0x68
	OpLmul  Opcode = 0x69
	OpFmul  Opcode = 0x6A
	OpDmul  Opcode = 0x6B
	OpIdiv  Opcode = 0x6C
	OpLdiv  Opcode = 0x6D
	OpFdiv  Opcode = 0x6E
	OpDdiv  Opcode = 0x6F
	OpIrem  Opcode = 0x70
	OpLrem  Opcode = 0x71
	OpFrem  Opcode = 0x72
	OpDrem  Opcode = 0x73
	OpIneg  Opcode = 0x74
	OpLneg  Opcode = 0x75
	OpFneg  Opcode = 0x76
	OpDneg  Opcode = 0x77
	OpIshl  Opcode = 0x78
	OpLshl  Opcode = 0x79
	OpIshr  Opcode = 0x7A
	OpLshr  Opcode = 0x7B
	OpIushr Opcode = 0x7C
	OpLushr Opcode = 0x7D
	OpIand  Opcode = 0x7E
	OpLand  Opcode = 0x7F
	OpIor   Opcode = 0x80
	OpLor   Opcode = 0x81
	OpIxor  Opcode = 0x82
	OpLxor  Opcode = 0x83
	OpIinc  Opcode = 0x84
)

// Conversions
const (
	OpI2l Opcode = 0x85
	OpI2f Opcode = 0x86
	OpI2d Opcode = 0x87
	OpL2i Opcode = 0x88
	OpL2f Opcode = 0x89
	OpL2d Opcode = 0x8A
	OpF2i Opcode = 0x8B
	OpF2l Opcode = 0x8C
	OpF2d Opcode = 0x8D
	OpD2i Opcode = 0x8E
	OpD2l Opcode = 0x8F
	OpD2f Opcode = 0x90
	OpI2b Opcode = 0x91
	OpI2c Opcode = 0x92
	OpI2s Opcode = 0x93
)

// Comparisons
const (
	OpLcmp     Opcode = 0x94
	OpFcmpl    Opcode = 0x95
	OpFcmpg    Opcode = 0x96
	OpDcmpl    Opcode = 0x97
	OpDcmpg    Opcode = 0x98
	OpIfeq     Opcode = 0x99
	OpIfne     Opcode = 0x9A
	OpIflt     Opcode = 0x9B
	OpIfge     Opcode = 0x9C
	OpIfgt     Opcode = 0x9D
	OpIfle     Opcode = 0x9E
	OpIfIcmpeq Opcode = 0x9F
	OpIfIcmpne Opcode = 0xA0
	OpIfIcmplt Opcode = 0xA1
	OpIfIcmpge Opcode = 0xA2
	OpIfIcmpgt Opcode = 0xA3
	OpIfIcmple Opcode = 0xA4
	OpIfAcmpeq Opcode = 0xA5
	OpIfAcmpne Opcode = 0xA6
)

// Control
const (
	OpGoto         Opcode = 0xA7
	OpJsr          Opcode = 0xA8
	OpRet          Opcode = 0xA9
	OpTableswitch  Opcode = 0xAA
	OpLookupswitch Opcode = 0xAB
	OpIreturn      Opcode = 0xAC
	OpLreturn      Opcode = 0xAD
	OpFreturn      Opcode = 0xAE
	OpDreturn      Opcode = 0xAF
	OpAreturn      Opcode = 0xB0
	OpReturn       Opcode = 0xB1
)

// References
const (
	OpGetstatic       Opcode = 0xB2
	OpPutstatic       Opcode = 0xB3
	OpGetfield        Opcode = 0xB4
	OpPutfield        Opcode = 0xB5
	OpInvokevirtual   Opcode = 0xB6
	OpInvokespecial   Opcode = 0xB7
	OpInvokestatic    Opcode = 0xB8
	OpInvokeinterface Opcode = 0xB9
	OpInvokedynamic   Opcode = 0xBA
	OpNew             Opcode = 0xBB
	OpNewarray        Opcode = 0xBC
	OpAnewarray       Opcode = 0xBD
	OpArraylength     Opcode = 0xBE
	OpAthrow          Opcode = 0xBF
	OpCheckcast       Opcode = 0xC0
	OpInstanceof      Opcode = 0xC1
	OpMonitorenter    Opcode = 0xC2
	OpMonitorexit     Opcode = 0xC3
)

// Extended
const (
	OpWide           Opcode = 0xC4
	OpMultianewarray Opcode = 0xC5
	OpIfnull         Opcode = 0xC6
	OpIfnonnull      Opcode = 0xC7
	OpGotoW          Opcode = 0xC8
	OpJsrW           Opcode = 0xC9
)

// Reserved
const (
	OpBreakpoint Opcode = 0xCA
	OpImpdep1    Opcode = 0xFE
	OpImpdep2    Opcode = 0xFF
)
// ---------------------------------------------------------------------------
// Opcode metadata
// ---------------------------------------------------------------------------

// VariableLength marks opcodes whose encoded size depends on their operands
// or alignment (tableswitch, lookupswitch, wide).
const VariableLength = -1

// OpcodeInfo holds metadata about an opcode.
type OpcodeInfo struct {
	Name   string // mnemonic as written by javap
	Length int    // total encoded size in bytes, opcode included
}

// opcodeTable maps opcodes to their metadata.
var opcodeTable = map[Opcode]OpcodeInfo{
	// Constants
	OpNop:        {"nop", 1},
	OpAconstNull: {"aconst_null", 1},
	OpIconstM1:   {"iconst_m1", 1},
	OpIconst0:    {"iconst_0", 1},
	OpIconst1:    {"iconst_1", 1},
	OpIconst2:    {"iconst_2", 1},
	OpIconst3:    {"iconst_3", 1},
	OpIconst4:    {"iconst_4", 1},
	OpIconst5:    {"iconst_5", 1},
	OpLconst0:    {"lconst_0", 1},
	OpLconst1:    {"lconst_1", 1},
	OpFconst0:    {"fconst_0", 1},
	OpFconst1:    {"fconst_1", 1},
	OpFconst2:    {"fconst_2", 1},
	OpDconst0:    {"dconst_0", 1},
	OpDconst1:    {"dconst_1", 1},
	OpBipush:     {"bipush", 2},
	OpSipush:     {"sipush", 3},
	OpLdc:        {"ldc", 2},
	OpLdcW:       {"ldc_w", 3},
	OpLdc2W:      {"ldc2_w", 3},

	// Loads
	OpIload:  {"iload", 2},
	OpLload:  {"lload", 2},
	OpFload:  {"fload", 2},
	OpDload:  {"dload", 2},
	OpAload:  {"aload", 2},
	OpIload0: {"iload_0", 1},
	OpIload1: {"iload_1", 1},
	OpIload2: {"iload_2", 1},
	OpIload3: {"iload_3", 1},
	OpLload0: {"lload_0", 1},
	OpLload1: {"lload_1", 1},
	OpLload2: {"lload_2", 1},
	OpLload3: {"lload_3", 1},
	OpFload0: {"fload_0", 1},
	OpFload1: {"fload_1", 1},
	OpFload2: {"fload_2", 1},
	OpFload3: {"fload_3", 1},
	OpDload0: {"dload_0", 1},
	OpDload1: {"dload_1", 1},
	OpDload2: {"dload_2", 1},
	OpDload3: {"dload_3", 1},
	OpAload0: {"aload_0", 1},
	OpAload1: {"aload_1", 1},
	OpAload2: {"aload_2", 1},
	OpAload3: {"aload_3", 1},
	OpIaload: {"iaload", 1},
	OpLaload: {"laload", 1},
	OpFaload: {"faload", 1},
	OpDaload: {"daload", 1},
	OpAaload: {"aaload", 1},
	OpBaload: {"baload", 1},
	OpCaload: {"caload", 1},
	OpSaload: {"saload", 1},

	// Stores
	OpIstore:  {"istore", 2},
	OpLstore:  {"lstore", 2},
	OpFstore:  {"fstore", 2},
	OpDstore:  {"dstore", 2},
	OpAstore:  {"astore", 2},
	OpIstore0: {"istore_0", 1},
	OpIstore1: {"istore_1", 1},
	OpIstore2: {"istore_2", 1},
	OpIstore3: {"istore_3", 1},
	OpLstore0: {"lstore_0", 1},
	OpLstore1: {"lstore_1", 1},
	OpLstore2: {"lstore_2", 1},
	OpLstore3: {"lstore_3", 1},
	OpFstore0: {"fstore_0", 1},
	OpFstore1: {"fstore_1", 1},
	OpFstore2: {"fstore_2", 1},
	OpFstore3: {"fstore_3", 1},
	OpDstore0: {"dstore_0", 1},
	OpDstore1: {"dstore_1", 1},
	OpDstore2: {"dstore_2", 1},
	OpDstore3: {"dstore_3", 1},
	OpAstore0: {"astore_0", 1},
	OpAstore1: {"astore_1", 1},
	OpAstore2: {"astore_2", 1},
	OpAstore3: {"astore_3", 1},
	OpIastore: {"iastore", 1},
	OpLastore: {"lastore", 1},
	OpFastore: {"fastore", 1},
	OpDastore: {"dastore", 1},
	OpAastore: {"aastore", 1},
	OpBastore: {"bastore", 1},
	OpCastore: {"castore", 1},
	OpSastore: {"sastore", 1},

	// Stack
	OpPop:    {"pop", 1},
	OpPop2:   {"pop2", 1},
	OpDup:    {"dup", 1},
	OpDupX1:  {"dup_x1", 1},
	OpDupX2:  {"dup_x2", 1},
	OpDup2:   {"dup2", 1},
	OpDup2X1: {"dup2_x1", 1},
	OpDup2X2: {"dup2_x2", 1},
	OpSwap:   {"swap", 1},

	// Math
	OpIadd:  {"iadd", 1},
	OpLadd:  {"ladd", 1},
	OpFadd:  {"fadd", 1},
	OpDadd:  {"dadd", 1},
	OpIsub:  {"isub", 1},
	OpLsub:  {"lsub", 1},
	OpFsub:  {"fsub", 1},
	OpDsub:  {"dsub", 1},
	OpImul:  {"imul", 1},
	OpLmul:  {"lmul", 1},
	OpFmul:  {"fmul", 1},
	OpDmul:  {"dmul", 1},
	OpIdiv:  {"idiv", 1},
	OpLdiv:  {"ldiv", 1},
	OpFdiv:  {"fdiv", 1},
	OpDdiv:  {"ddiv", 1},
	OpIrem:  {"irem", 1},
	OpLrem:  {"lrem", 1},
	OpFrem:  {"frem", 1},
	OpDrem:  {"drem", 1},
	OpIneg:  {"ineg", 1},
	OpLneg:  {"lneg", 1},
	OpFneg:  {"fneg", 1},
	OpDneg:  {"dneg", 1},
	OpIshl:  {"ishl", 1},
	OpLshl:  {"lshl", 1},
	OpIshr:  {"ishr", 1},
	OpLshr:  {"lshr", 1},
	OpIushr: {"iushr", 1},
	OpLushr: {"lushr", 1},
	OpIand:  {"iand", 1},
	OpLand:  {"land", 1},
	OpIor:   {"ior", 1},
	OpLor:   {"lor", 1},
	OpIxor:  {"ixor", 1},
	OpLxor:  {"lxor", 1},
	OpIinc:  {"iinc", 3},

	// Conversions
	OpI2l: {"i2l", 1},
	OpI2f: {"i2f", 1},
	OpI2d: {"i2d", 1},
	OpL2i: {"l2i", 1},
	OpL2f: {"l2f", 1},
	OpL2d: {"l2d", 1},
	OpF2i: {"f2i", 1},
	OpF2l: {"f2l", 1},
	OpF2d: {"f2d", 1},
	OpD2i: {"d2i", 1},
	OpD2l: {"d2l", 1},
	OpD2f: {"d2f", 1},
	OpI2b: {"i2b", 1},
	OpI2c: {"i2c", 1},
	OpI2s: {"i2s", 1},

	// Comparisons
	OpLcmp:     {"lcmp", 1},
	OpFcmpl:    {"fcmpl", 1},
	OpFcmpg:    {"fcmpg", 1},
	OpDcmpl:    {"dcmpl", 1},
	OpDcmpg:    {"dcmpg", 1},
	OpIfeq:     {"ifeq", 3},
	OpIfne:     {"ifne", 3},
	OpIflt:     {"iflt", 3},
	OpIfge:     {"ifge", 3},
	OpIfgt:     {"ifgt", 3},
	OpIfle:     {"ifle", 3},
	OpIfIcmpeq: {"if_icmpeq", 3},
	OpIfIcmpne: {"if_icmpne", 3},
	OpIfIcmplt: {"if_icmplt", 3},
	OpIfIcmpge: {"if_icmpge", 3},
	OpIfIcmpgt: {"if_icmpgt", 3},
	OpIfIcmple: {"if_icmple", 3},
	OpIfAcmpeq: {"if_acmpeq", 3},
	OpIfAcmpne: {"if_acmpne", 3},

	// Control
	OpGoto:         {"goto", 3},
	OpJsr:          {"jsr", 3},
	OpRet:          {"ret", 2},
	OpTableswitch:  {"tableswitch", VariableLength},
	OpLookupswitch: {"lookupswitch", VariableLength},
	OpIreturn:      {"ireturn", 1},
	OpLreturn:      {"lreturn", 1},
	OpFreturn:      {"freturn", 1},
	OpDreturn:      {"dreturn", 1},
	OpAreturn:      {"areturn", 1},
	OpReturn:       {"return", 1},

	// References
	OpGetstatic:       {"getstatic", 3},
	OpPutstatic:       {"putstatic", 3},
	OpGetfield:        {"getfield", 3},
	OpPutfield:        {"putfield", 3},
	OpInvokevirtual:   {"invokevirtual", 3},
	OpInvokespecial:   {"invokespecial", 3},
	OpInvokestatic:    {"invokestatic", 3},
	OpInvokeinterface: {"invokeinterface", 5},
	OpInvokedynamic:   {"invokedynamic", 5},
	OpNew:             {"new", 3},
	OpNewarray:        {"newarray", 2},
	OpAnewarray:       {"anewarray", 3},
	OpArraylength:     {"arraylength", 1},
	OpAthrow:          {"athrow", 1},
	OpCheckcast:       {"checkcast", 3},
	OpInstanceof:      {"instanceof", 3},
	OpMonitorenter:    {"monitorenter", 1},
	OpMonitorexit:     {"monitorexit", 1},

	// Extended
	OpWide:           {"wide", VariableLength},
	OpMultianewarray: {"multianewarray", 4},
	OpIfnull:         {"ifnull", 3},
	OpIfnonnull:      {"ifnonnull", 3},
	OpGotoW:          {"goto_w", 5},
	OpJsrW:           {"jsr_w", 5},

	// Reserved
	OpBreakpoint: {"breakpoint", 1},
	OpImpdep1:    {"impdep1", 1},
	OpImpdep2:    {"impdep2", 1},
}

// Info returns the metadata for an opcode.
func (op Opcode) Info() OpcodeInfo {
	if info, ok := opcodeTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN_%02X", byte(op)), Length: 1}
}

// Defined reports whether op is assigned by the class-file format.
func (op Opcode) Defined() bool {
	_, ok := opcodeTable[op]
	return ok
}

// Length returns the encoded size of the instruction, or VariableLength.
func (op Opcode) Length() int {
	return op.Info().Length
}

// String implements the Stringer interface.
func (op Opcode) String() string {
	return op.Info().Name
}

// OpcodeCount returns the number of defined opcodes.
func OpcodeCount() int {
	return len(opcodeTable)
}
