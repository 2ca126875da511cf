package glcts

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/glcts/gl"
)

// CaseResult pairs a case path with its terminal result.
type CaseResult struct {
	Path   string
	Result Result
}

// Report aggregates the outcome of one suite run.
type Report struct {
	Name     string
	Executed int
	Passed   int
	Failed   int
	Skipped  int
	Errored  int

	// Failures lists every case that did not pass or skip, in
	// execution order.
	Failures []CaseResult
}

// OK reports whether the run had no failures and no internal errors.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Errored == 0
}

// Summary returns a one-line human-readable summary of the run.
func (r *Report) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s: %d executed, %d passed, %d failed, %d not supported, %d internal errors",
		r.Name, r.Executed, r.Passed, r.Failed, r.Skipped, r.Errored)
}

// String renders the summary plus one line per failing case.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString(r.Summary())
	for _, f := range r.Failures {
		b.WriteString("\n  ")
		b.WriteString(f.Path)
		b.WriteString(": ")
		b.WriteString(f.Result.String())
	}
	return b.String()
}

// Run executes the suite's tree depth-first and returns the aggregate
// report.
//
// Each case runs to completion in order; there is no parallelism, as
// cases share the context's process-wide state (bindings, current
// program, error register). A panic inside a case body is recovered,
// recorded as InternalError on that case, and traversal continues with
// the next sibling. An error from a case's Init hook is a setup
// failure and aborts the whole run.
func (s *Suite) Run() (*Report, error) {
	report := &Report{Name: s.name}
	s.log.Info("suite start", "suite", s.name)
	if err := s.runGroup(s.root, s.name, report); err != nil {
		return report, err
	}
	s.log.Info("suite finished", "suite", s.name, "summary", report.Summary())
	return report, nil
}

func (s *Suite) runGroup(g *Group, path string, report *Report) error {
	for _, n := range g.Children() {
		childPath := path + "." + n.Name()
		switch child := n.(type) {
		case *Group:
			if err := s.runGroup(child, childPath, report); err != nil {
				return err
			}
		case *Case:
			if s.filter != nil && !s.filter(childPath) {
				continue
			}
			res, err := s.runCase(child, childPath)
			if err != nil {
				return err
			}
			report.Executed++
			switch res.Status {
			case Pass:
				report.Passed++
			case NotSupported:
				report.Skipped++
			case Fail:
				report.Failed++
			case InternalError:
				report.Errored++
			}
			if res.Status == Fail || res.Status == InternalError {
				report.Failures = append(report.Failures, CaseResult{Path: childPath, Result: res})
			}
		default:
			return fmt.Errorf("glcts: unknown node type %T at %s", n, childPath)
		}
	}
	return nil
}

// runCase drives one case through its lifecycle. The returned error is
// non-nil only for setup failures, which are fatal to the run.
func (s *Suite) runCase(tc *Case, path string) (Result, error) {
	c := &C{suite: s, path: path, log: s.log}
	s.log.Debug("case start", "case", path)

	if tc.hooks.Init != nil {
		if err := s.runInit(tc, c); err != nil {
			return Result{}, fmt.Errorf("glcts: init of %s: %w", path, err)
		}
	}

	for {
		progress := s.runIteration(tc, c)
		c.iteration++
		if progress == Stop {
			break
		}
	}

	if tc.hooks.Deinit != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.setStatus(InternalError, fmt.Sprintf("panic in deinit: %v", r))
				}
			}()
			tc.hooks.Deinit(c)
		}()
	}
	c.runCleanups()
	s.drainLeakedErrors(c)

	res := c.result()
	s.log.Info("case finished", "case", path, "status", res.Status.String())
	return res, nil
}

// runInit runs the Init hook. A panic in Init is a setup failure like
// a returned error; converting it keeps Run's contract of reporting
// setup problems through its error return instead of crashing the
// host.
func (s *Suite) runInit(tc *Case, c *C) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if abort, ok := r.(caseAbort); ok {
			err = fmt.Errorf("panic in init: %s", abort.message)
			return
		}
		err = fmt.Errorf("panic in init: %v", r)
	}()
	return tc.hooks.Init(c)
}

// runIteration executes one iteration of the case body, converting
// panics into terminal statuses.
func (s *Suite) runIteration(tc *Case, c *C) (progress Progress) {
	progress = Stop
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		progress = Stop
		if abort, ok := r.(caseAbort); ok {
			c.setStatus(abort.status, abort.message)
			return
		}
		c.setStatus(InternalError, fmt.Sprintf("panic: %v", r))
	}()
	return tc.hooks.Iterate(c)
}

// drainLeakedErrors clears any error-register state a case left
// behind, so one case's mistake cannot fail its siblings. A leak is
// logged: releasing resources and draining errors is the case's
// responsibility.
func (s *Suite) drainLeakedErrors(c *C) {
	if s.ctx == nil {
		return
	}
	if leaked := gl.DrainErrors(s.ctx); len(leaked) > 0 {
		s.log.Warn("case leaked error state", "case", c.path, "errors", leaked)
	}
}
