package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chazu/jbc/insn"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
)

func sampleBody() []insn.Instruction {
	return []insn.Instruction{
		insn.NewGetStatic(2),
		insn.NewGetField(5),
		insn.NewInvokeInterface(9, 2),
		insn.NewCheckCast(6),
		insn.NewArrayLength(),
		insn.NewPutStatic(2),
	}
}

func formats(insts []insn.Instruction) []string {
	out := make([]string, len(insts))
	for i, in := range insts {
		out[i] = insn.Format(in)
	}
	return out
}

func TestListing_CBORRoundTrip(t *testing.T) {
	body := sampleBody()
	data, err := MarshalListing("com/example/Main.run()V", body)
	if err != nil {
		t.Fatalf("MarshalListing: %v", err)
	}

	method, got, err := UnmarshalListing(data)
	if err != nil {
		t.Fatalf("UnmarshalListing: %v", err)
	}
	if method != "com/example/Main.run()V" {
		t.Errorf("Method: got %q", method)
	}
	if diff := cmp.Diff(formats(body), formats(got)); diff != "" {
		t.Errorf("instructions mismatch (-want +got):\n%s", diff)
	}
}

func TestListing_Deterministic(t *testing.T) {
	a, err := MarshalListing("m", sampleBody())
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalListing("m", sampleBody())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}

	ha, err := NewListing("m", sampleBody()).Hash()
	if err != nil {
		t.Fatal(err)
	}
	hb, err := NewListing("m", sampleBody()[:5]).Hash()
	if err != nil {
		t.Fatal(err)
	}
	if ha == hb {
		t.Error("different listings share a hash")
	}
}

func TestListing_EntryBytes(t *testing.T) {
	// {1: 0xB4, 2: 5} in canonical form.
	want := []byte{0xA2, 0x01, 0x18, 0xB4, 0x02, 0x05}
	got, err := cborEncMode.Marshal(EntryOf(insn.NewGetField(5)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryOf(t *testing.T) {
	tests := []struct {
		in   insn.Instruction
		want Entry
	}{
		{insn.NewGetField(5), Entry{Opcode: 0xB4, Index: 5}},
		{insn.NewInvokeInterface(9, 2), Entry{Opcode: 0xB9, Index: 9, Count: 2}},
		{insn.NewArrayLength(), Entry{Opcode: 0xBE}},
	}
	for _, tt := range tests {
		if got := EntryOf(tt.in); got != tt.want {
			t.Errorf("EntryOf(%s) = %+v, want %+v", insn.Format(tt.in), got, tt.want)
		}
	}
}

func TestInstructions_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{"missing index", Entry{Opcode: 0xB4}, insn.ErrIncomplete},
		{"missing count", Entry{Opcode: 0xB9, Index: 3}, insn.ErrIncomplete},
		{"unknown opcode", Entry{Opcode: 0xCB}, insn.ErrUnknownOpcode},
		{"unsupported", Entry{Opcode: 0x00}, insn.ErrUnsupportedOpcode},
		{"stray index", Entry{Opcode: 0xBE, Index: 4}, insn.ErrMalformed},
		{"stray count", Entry{Opcode: 0xB4, Index: 4, Count: 1}, insn.ErrMalformed},
	}
	for _, tt := range tests {
		l := &Listing{Method: "m", Code: []Entry{{Opcode: 0xBE}, tt.entry}}
		if _, err := l.Instructions(); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}

		data, err := cbor.Marshal(l)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := UnmarshalListing(data); !errors.Is(err, tt.want) {
			t.Errorf("%s: UnmarshalListing err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestVerifyListing(t *testing.T) {
	l := NewListing("m", sampleBody())
	data, err := cborEncMode.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	h, err := l.Hash()
	if err != nil {
		t.Fatal(err)
	}

	if err := VerifyListing(data, h); err != nil {
		t.Errorf("VerifyListing: %v", err)
	}

	h[0] ^= 0xFF
	if err := VerifyListing(data, h); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("VerifyListing err = %v, want ErrHashMismatch", err)
	}
}

func TestUnmarshalListing_InvalidData(t *testing.T) {
	if _, _, err := UnmarshalListing([]byte{0xFF, 0x00}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}
