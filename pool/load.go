package pool

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jbc.pool")

// Fixture is the TOML form of a constant pool:
//
//	[[class]]
//	index = 6
//	name = "java/lang/String"
//
//	[[field]]
//	index = 1
//	class = "com/example/Point"
//	name = "x"
//	type = "I"
//
// [[method]] and [[interface_method]] tables take the same keys as
// [[field]], with a method descriptor as type.
type Fixture struct {
	Classes          []ClassEntry  `toml:"class"`
	Fields           []MemberEntry `toml:"field"`
	Methods          []MemberEntry `toml:"method"`
	InterfaceMethods []MemberEntry `toml:"interface_method"`
}

// ClassEntry is one [[class]] table.
type ClassEntry struct {
	Index uint16 `toml:"index"`
	Name  string `toml:"name"`
}

// MemberEntry is one [[field]], [[method]] or [[interface_method]] table.
type MemberEntry struct {
	Index uint16 `toml:"index"`
	Class string `toml:"class"`
	Name  string `toml:"name"`
	Type  string `toml:"type"`
}

// Builder returns a builder holding every entry of f.
func (f *Fixture) Builder() *Builder {
	b := NewBuilder()
	for _, c := range f.Classes {
		b.Class(c.Index, c.Name)
	}
	for _, m := range f.Fields {
		b.Field(m.Index, m.Class, m.Name, m.Type)
	}
	for _, m := range f.Methods {
		b.Method(m.Index, m.Class, m.Name, m.Type)
	}
	for _, m := range f.InterfaceMethods {
		b.InterfaceMethod(m.Index, m.Class, m.Name, m.Type)
	}
	return b
}

// Parse builds a pool from TOML. Unknown keys are logged and ignored.
func Parse(data []byte) (*Pool, error) {
	var f Fixture
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("pool: parse error: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Warningf("ignoring unknown key %s", key)
	}
	return f.Builder().Build()
}

// Load reads and parses the TOML pool at path.
func Load(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pool: cannot read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %d entries from %s", p.Len(), path)
	return p, nil
}
