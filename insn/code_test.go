package insn

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRawBuild(t *testing.T) {
	var r Raw
	r.SetOpcode(OpGetfield)
	r.SetIndex(5)
	in, err := r.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g, ok := in.(*GetField)
	if !ok {
		t.Fatalf("Build returned %T, want *GetField", in)
	}
	if g.Index() != 5 {
		t.Errorf("Index() = %d, want 5", g.Index())
	}

	r.Reset()
	r.SetOpcode(OpInvokeinterface)
	r.SetIndex(9)
	r.SetCount(3)
	in, err = r.Build()
	if err != nil {
		t.Fatalf("Build invokeinterface: %v", err)
	}
	if ii := in.(*InvokeInterface); ii.Index() != 9 || ii.Count() != 3 {
		t.Errorf("got %s, want invokeinterface #9 3", Format(ii))
	}

	r.Reset()
	r.SetOpcode(OpArraylength)
	if in, err = r.Build(); err != nil || in.Opcode() != OpArraylength {
		t.Errorf("Build arraylength = %v, %v", in, err)
	}
}

func TestRawBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Raw)
		want  error
	}{
		{"empty", func(r *Raw) {}, ErrIncomplete},
		{"no index", func(r *Raw) { r.SetOpcode(OpGetfield) }, ErrIncomplete},
		{"zero index", func(r *Raw) { r.SetOpcode(OpPutstatic); r.SetIndex(0) }, ErrIncomplete},
		{"index only", func(r *Raw) { r.SetIndex(5) }, ErrIncomplete},
		{"no count", func(r *Raw) { r.SetOpcode(OpInvokeinterface); r.SetIndex(5) }, ErrIncomplete},
		{"zero count", func(r *Raw) {
			r.SetOpcode(OpInvokeinterface)
			r.SetIndex(5)
			r.SetCount(0)
		}, ErrIncomplete},
		{"undefined", func(r *Raw) { r.SetOpcode(Opcode(0xCB)) }, ErrUnknownOpcode},
		{"nop", func(r *Raw) { r.SetOpcode(OpNop) }, ErrUnsupportedOpcode},
		{"invokedynamic", func(r *Raw) { r.SetOpcode(OpInvokedynamic); r.SetIndex(3) }, ErrUnsupportedOpcode},
	}

	for _, tt := range tests {
		var r Raw
		tt.setup(&r)
		in, err := r.Build()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Build err = %v, want %v", tt.name, err, tt.want)
		}
		if in != nil {
			t.Errorf("%s: Build returned %v alongside error", tt.name, in)
		}
	}
}

func TestEncodeBytes(t *testing.T) {
	tests := []struct {
		in   Instruction
		want []byte
	}{
		{NewGetField(5), []byte{0xB4, 0x00, 0x05}},
		{NewPutField(0x1234), []byte{0xB5, 0x12, 0x34}},
		{NewGetStatic(1), []byte{0xB2, 0x00, 0x01}},
		{NewPutStatic(256), []byte{0xB3, 0x01, 0x00}},
		{NewInvokeVirtual(7), []byte{0xB6, 0x00, 0x07}},
		{NewInvokeInterface(9, 2), []byte{0xB9, 0x00, 0x09, 0x02, 0x00}},
		{NewNew(3), []byte{0xBB, 0x00, 0x03}},
		{NewCheckCast(4), []byte{0xC0, 0x00, 0x04}},
		{NewArrayLength(), []byte{0xBE}},
	}
	for _, tt := range tests {
		got := Encode([]Instruction{tt.in})
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s bytes mismatch (-want +got):\n%s", Format(tt.in), diff)
		}
		if len(got) != Length(tt.in) {
			t.Errorf("%s: encoded %d bytes, Length() = %d", Format(tt.in), len(got), Length(tt.in))
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	insts := allVariants()
	code := Encode(insts)

	got, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(insts) {
		t.Fatalf("decoded %d instructions, want %d", len(got), len(insts))
	}
	for i := range insts {
		if Format(got[i]) != Format(insts[i]) {
			t.Errorf("instruction %d: got %s, want %s", i, Format(got[i]), Format(insts[i]))
		}
		if got[i].Capabilities() != insts[i].Capabilities() {
			t.Errorf("instruction %d: capabilities %s, want %s", i, got[i].Capabilities(), insts[i].Capabilities())
		}
	}
	if diff := cmp.Diff(code, Encode(got)); diff != "" {
		t.Errorf("re-encoded bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want error
	}{
		{"truncated index", []byte{0xB4, 0x00}, ErrTruncated},
		{"truncated invokeinterface", []byte{0xB9, 0x00, 0x05, 0x01}, ErrTruncated},
		{"unknown", []byte{0xCB}, ErrUnknownOpcode},
		{"unsupported", []byte{0x00}, ErrUnsupportedOpcode},
		{"nonzero fourth byte", []byte{0xB9, 0x00, 0x05, 0x01, 0x07}, ErrMalformed},
		{"zero count", []byte{0xB9, 0x00, 0x05, 0x00, 0x00}, ErrIncomplete},
		{"zero index", []byte{0xB2, 0x00, 0x00}, ErrIncomplete},
	}
	for _, tt := range tests {
		_, err := Decode(tt.code)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Decode err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestReaderPositions(t *testing.T) {
	code := Encode([]Instruction{NewGetStatic(1), NewInvokeInterface(5, 1), NewArrayLength()})
	r := NewReader(code)

	var offsets []int
	for r.HasMore() {
		offsets = append(offsets, r.Position())
		if _, err := r.Next(); err != nil {
			t.Fatalf("Next at %d: %v", r.Position(), err)
		}
	}
	if diff := cmp.Diff([]int{0, 3, 8}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderLen(t *testing.T) {
	b := NewBuilder()
	b.Emit(NewNew(2))
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
	b.Emit(NewInvokeInterface(2, 1))
	if b.Len() != 8 {
		t.Errorf("Len() = %d, want 8", b.Len())
	}
}

func TestDisassemble(t *testing.T) {
	code := Encode([]Instruction{
		NewGetStatic(2),
		NewInvokeInterface(9, 2),
		NewCheckCast(6),
		NewArrayLength(),
	})
	got, err := Disassemble(code)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	want := "0000  getstatic #2\n" +
		"0003  invokeinterface #9 2\n" +
		"0008  checkcast #6\n" +
		"0011  arraylength"
	if got != want {
		t.Errorf("Disassemble:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisassemblePartial(t *testing.T) {
	code := append(Encode([]Instruction{NewNew(1)}), 0xB4, 0x00)
	got, err := Disassemble(code)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
	if got != "0000  new #1" {
		t.Errorf("partial output = %q", got)
	}
}
