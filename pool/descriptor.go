package pool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadDescriptor reports a malformed field or method descriptor.
var ErrBadDescriptor = errors.New("bad descriptor")

// maxDimensions is the deepest array type a descriptor may name.
const maxDimensions = 255

// FieldCategory returns the operand-stack words taken by a value of the
// field type sig: 2 for long and double, 1 for everything else.
func FieldCategory(sig string) (int, error) {
	n, rest, err := parseField(sig)
	if err != nil {
		return 0, fmt.Errorf("pool: field descriptor %q: %w", sig, err)
	}
	if rest != "" {
		return 0, fmt.Errorf("pool: field descriptor %q: trailing %q: %w", sig, rest, ErrBadDescriptor)
	}
	return n, nil
}

// MethodWords returns the words taken by the declared arguments of the
// method type sig and the words of its return value, 0 for void.
func MethodWords(sig string) (args, ret int, err error) {
	rest, ok := strings.CutPrefix(sig, "(")
	if !ok {
		return 0, 0, fmt.Errorf("pool: method descriptor %q: missing '(': %w", sig, ErrBadDescriptor)
	}
	for !strings.HasPrefix(rest, ")") {
		var n int
		n, rest, err = parseField(rest)
		if err != nil {
			return 0, 0, fmt.Errorf("pool: method descriptor %q: %w", sig, err)
		}
		args += n
	}
	rest = rest[1:]

	if rest == "V" {
		return args, 0, nil
	}
	ret, rest, err = parseField(rest)
	if err != nil {
		return 0, 0, fmt.Errorf("pool: method descriptor %q: return type: %w", sig, err)
	}
	if rest != "" {
		return 0, 0, fmt.Errorf("pool: method descriptor %q: trailing %q: %w", sig, rest, ErrBadDescriptor)
	}
	return args, ret, nil
}

// parseField consumes one field type from the front of s and returns its
// category and the remainder.
func parseField(s string) (int, string, error) {
	if s == "" {
		return 0, s, fmt.Errorf("unexpected end: %w", ErrBadDescriptor)
	}
	switch s[0] {
	case 'B', 'C', 'F', 'I', 'S', 'Z':
		return 1, s[1:], nil
	case 'J', 'D':
		return 2, s[1:], nil
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 2 {
			return 0, s, fmt.Errorf("unterminated class type %q: %w", s, ErrBadDescriptor)
		}
		return 1, s[end+1:], nil
	case '[':
		elem := strings.TrimLeft(s, "[")
		if dims := len(s) - len(elem); dims > maxDimensions {
			return 0, s, fmt.Errorf("%d array dimensions: %w", dims, ErrBadDescriptor)
		}
		_, rest, err := parseField(elem)
		if err != nil {
			return 0, s, err
		}
		return 1, rest, nil
	}
	return 0, s, fmt.Errorf("unexpected %q: %w", s[0], ErrBadDescriptor)
}

// checkClassName accepts an internal class name or an array descriptor.
func checkClassName(name string) error {
	if strings.HasPrefix(name, "[") {
		_, err := FieldCategory(name)
		return err
	}
	if name == "" || strings.ContainsAny(name, ".;[") {
		return fmt.Errorf("pool: class name %q: %w", name, ErrBadDescriptor)
	}
	return nil
}
