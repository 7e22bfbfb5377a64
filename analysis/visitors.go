// Package analysis runs visitor-based checks over straight-line
// instruction sequences.
package analysis

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chazu/jbc/excs"
	"github.com/chazu/jbc/insn"
)

// ErrStackUnderflow reports an instruction popping more words than the
// operand stack holds.
var ErrStackUnderflow = errors.New("operand stack underflow")

// ---------------------------------------------------------------------------
// DepthTracker
// ---------------------------------------------------------------------------

// DepthTracker follows operand-stack depth across instructions. Pops are
// applied before pushes, matching the order Accept delivers them.
type DepthTracker struct {
	insn.EmptyVisitor

	r     insn.Resolver
	depth int
	max   int
}

// NewDepthTracker starts tracking at the given depth.
func NewDepthTracker(r insn.Resolver, depth int) *DepthTracker {
	return &DepthTracker{r: r, depth: depth, max: depth}
}

// Depth returns the current depth in words.
func (t *DepthTracker) Depth() int { return t.depth }

// Max returns the deepest the stack has been.
func (t *DepthTracker) Max() int { return t.max }

func (t *DepthTracker) VisitStackConsumer(in insn.StackConsumer) error {
	n, err := in.ConsumedWords(t.r)
	if err != nil {
		return err
	}
	if n > t.depth {
		return fmt.Errorf("%s pops %d words, stack holds %d: %w", insn.Format(in), n, t.depth, ErrStackUnderflow)
	}
	t.depth -= n
	return nil
}

func (t *DepthTracker) VisitStackProducer(in insn.StackProducer) error {
	n, err := in.ProducedWords(t.r)
	if err != nil {
		return err
	}
	t.depth += n
	t.max = max(t.max, t.depth)
	return nil
}

// ---------------------------------------------------------------------------
// ExceptionCollector
// ---------------------------------------------------------------------------

// ExceptionCollector gathers every exception kind the visited instructions
// may raise, in first-seen order without duplicates.
type ExceptionCollector struct {
	insn.EmptyVisitor
	kinds []excs.Kind
}

func (c *ExceptionCollector) VisitExceptionThrower(in insn.ExceptionThrower) error {
	c.kinds = excs.Union(c.kinds, in.Exceptions())
	return nil
}

// Kinds returns the collected kinds.
func (c *ExceptionCollector) Kinds() []excs.Kind {
	return slices.Clone(c.kinds)
}

// ---------------------------------------------------------------------------
// ClassCollector
// ---------------------------------------------------------------------------

// ClassCollector gathers the classes the visited instructions may cause to
// be loaded. Arrays of primitives contribute nothing.
type ClassCollector struct {
	insn.EmptyVisitor

	r       insn.Resolver
	classes []string
}

// NewClassCollector returns a collector resolving through r.
func NewClassCollector(r insn.Resolver) *ClassCollector {
	return &ClassCollector{r: r}
}

func (c *ClassCollector) VisitLoadClass(in insn.ClassLoader) error {
	name, err := in.LoadClassType(c.r)
	if err != nil {
		return err
	}
	if name != "" && !slices.Contains(c.classes, name) {
		c.classes = append(c.classes, name)
	}
	return nil
}

// Classes returns the collected internal class names in first-seen order.
func (c *ClassCollector) Classes() []string {
	return slices.Clone(c.classes)
}
