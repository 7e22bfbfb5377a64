package analysis

import (
	"context"
	"fmt"
	"runtime"

	"github.com/chazu/jbc/excs"
	"github.com/chazu/jbc/insn"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("jbc.analysis")

// Result summarizes one method body.
type Result struct {
	Method       string
	Instructions int
	MaxStack     int
	FinalDepth   int
	Exceptions   []excs.Kind
	Classes      []string
}

// Method is a named code array.
type Method struct {
	Name string
	Code []byte
}

// Options configures AnalyzeAll.
type Options struct {
	// Workers bounds how many bodies are analyzed at once. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// Analyze decodes code and analyzes it as a straight-line body starting
// from an empty stack.
func Analyze(code []byte, r insn.Resolver) (Result, error) {
	return analyzeCode("", code, r)
}

func analyzeCode(method string, code []byte, r insn.Resolver) (Result, error) {
	insts, err := insn.Decode(code)
	if err != nil {
		return Result{Method: method}, fmt.Errorf("analysis: %s%w", where(method), err)
	}
	return AnalyzeInstructions(method, insts, r)
}

// AnalyzeInstructions analyzes already-decoded instructions. Every
// instruction is dispatched to each collector in turn; the first error
// stops the analysis.
func AnalyzeInstructions(method string, insts []insn.Instruction, r insn.Resolver) (Result, error) {
	depth := NewDepthTracker(r, 0)
	thrown := &ExceptionCollector{}
	classes := NewClassCollector(r)
	visitors := []insn.Visitor{depth, thrown, classes}

	offset := 0
	for _, in := range insts {
		for _, v := range visitors {
			if err := in.Accept(v); err != nil {
				return Result{Method: method}, fmt.Errorf("analysis: %s%04d %s: %w",
					where(method), offset, insn.Format(in), err)
			}
		}
		offset += insn.Length(in)
	}

	return Result{
		Method:       method,
		Instructions: len(insts),
		MaxStack:     depth.Max(),
		FinalDepth:   depth.Depth(),
		Exceptions:   thrown.Kinds(),
		Classes:      classes.Classes(),
	}, nil
}

func where(method string) string {
	if method == "" {
		return ""
	}
	return method + ": "
}

// AnalyzeAll analyzes methods concurrently against one shared resolver,
// which must be safe for concurrent use. Results are in the order of
// methods. The first failure cancels the remaining work and is returned.
func AnalyzeAll(ctx context.Context, methods []Method, r insn.Resolver, opts Options) ([]Result, error) {
	results := make([]Result, len(methods))
	workers := opts.workers()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range methods {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := analyzeCode(m.Name, m.Code, r)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debugf("batch of %d methods failed: %s", len(methods), err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debugf("analyzed %d methods with %d workers", len(methods), workers)
	return results, nil
}
