// Package excs is the catalog of exception kinds the JVM may raise while
// linking or executing an instruction, grouped into named bundles that
// instruction variants compose into their thrown sets.
package excs

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Kind names an exception class by its binary name.
type Kind string

// Linking errors.
const (
	NoClassDefFoundError         Kind = "java.lang.NoClassDefFoundError"
	ClassFormatError             Kind = "java.lang.ClassFormatError"
	VerifyError                  Kind = "java.lang.VerifyError"
	AbstractMethodError          Kind = "java.lang.AbstractMethodError"
	ExceptionInInitializerError  Kind = "java.lang.ExceptionInInitializerError"
	IllegalAccessError           Kind = "java.lang.IllegalAccessError"
	InstantiationError           Kind = "java.lang.InstantiationError"
	IncompatibleClassChangeError Kind = "java.lang.IncompatibleClassChangeError"
	NoSuchFieldError             Kind = "java.lang.NoSuchFieldError"
	NoSuchMethodError            Kind = "java.lang.NoSuchMethodError"
	UnsatisfiedLinkError         Kind = "java.lang.UnsatisfiedLinkError"
)

// Run-time exceptions.
const (
	NullPointerException Kind = "java.lang.NullPointerException"
	ClassCastException   Kind = "java.lang.ClassCastException"
)

// Bundle names a fixed, ordered group of kinds.
type Bundle string

const (
	ClassAndInterfaceResolution Bundle = "class-and-interface-resolution"
	// FieldAndMethodResolution is shared by field and method instructions.
	FieldAndMethodResolution  Bundle = "field-and-method-resolution"
	InterfaceMethodResolution Bundle = "interface-method-resolution"
)

// ErrUnknownBundle is returned when a bundle name was never registered.
// Hitting it means the caller is miswired.
var ErrUnknownBundle = errors.New("unknown exception bundle")

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

var (
	registryOnce sync.Once
	registry     map[Bundle][]Kind
)

func bundles() map[Bundle][]Kind {
	registryOnce.Do(func() {
		registry = map[Bundle][]Kind{
			ClassAndInterfaceResolution: {
				NoClassDefFoundError,
				ClassFormatError,
				VerifyError,
				AbstractMethodError,
				ExceptionInInitializerError,
				IllegalAccessError,
			},
			FieldAndMethodResolution: {
				NoSuchFieldError,
				IllegalAccessError,
				NoSuchMethodError,
			},
			InterfaceMethodResolution: {
				IncompatibleClassChangeError,
				NoSuchMethodError,
				IllegalAccessError,
			},
		}
	})
	return registry
}

// Lookup returns the kinds of a bundle in declaration order. The slice is a
// copy; callers may modify it.
func Lookup(b Bundle) ([]Kind, error) {
	kinds, ok := bundles()[b]
	if !ok {
		return nil, fmt.Errorf("excs: %q: %w", string(b), ErrUnknownBundle)
	}
	return slices.Clone(kinds), nil
}

// MustLookup is like Lookup but panics on an unknown bundle.
func MustLookup(b Bundle) []Kind {
	kinds, err := Lookup(b)
	if err != nil {
		panic(err)
	}
	return kinds
}

// Compose returns the kinds of b followed by extra, keeping the first
// occurrence of each kind. It panics if b is not registered.
func Compose(b Bundle, extra ...Kind) []Kind {
	base := MustLookup(b)
	out := make([]Kind, 0, len(base)+len(extra))
	seen := make(map[Kind]bool, cap(out))
	for _, k := range append(base, extra...) {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Bundles returns every registered bundle name, sorted.
func Bundles() []Bundle {
	names := make([]Bundle, 0, len(bundles()))
	for b := range bundles() {
		names = append(names, b)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Union merges kind sets, keeping first-seen order.
func Union(sets ...[]Kind) []Kind {
	var out []Kind
	seen := make(map[Kind]bool)
	for _, set := range sets {
		for _, k := range set {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// Short returns the simple class name, e.g. "NullPointerException".
func (k Kind) Short() string {
	s := string(k)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}
