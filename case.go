package glcts

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand/v2"

	"github.com/gogpu/glcts/gl"
)

// caseAbort is the panic payload used by Fatalf and Skipf to unwind a
// case body immediately. The runner recovers it and records the status.
type caseAbort struct {
	status  Status
	message string
}

// C is the per-case handle passed to every lifecycle hook. It records
// check outcomes, provides access to the context under test, and owns
// the case's deterministic random source.
//
// C is only valid for the duration of its case; hooks must not retain
// it.
type C struct {
	suite     *Suite
	path      string
	log       *slog.Logger
	status    Status
	message   string
	iteration int
	rng       *rand.Rand
	cleanups  []func()
}

// Path returns the full dotted path of the case, e.g.
// "gles3.negative.buffer.bind_buffer_invalid_target".
func (c *C) Path() string { return c.path }

// Iteration returns the zero-based index of the current iteration.
func (c *C) Iteration() int { return c.iteration }

// GL returns the graphics context under test, or nil when the suite
// was built without one. Cases that need a context should call
// [C.RequireGL] instead.
func (c *C) GL() gl.Context { return c.suite.ctx }

// RequireGL returns the context under test, skipping the case with a
// neutral NotSupported status when the suite has none.
func (c *C) RequireGL() gl.Context {
	if c.suite.ctx == nil {
		c.Skipf("no GL context configured")
	}
	return c.suite.ctx
}

// Rand returns the case's random source, seeded from a hash of the
// case path so repeated runs of the same case see identical values.
func (c *C) Rand() *rand.Rand {
	if c.rng == nil {
		seed := pathSeed(c.path)
		c.rng = rand.New(rand.NewPCG(seed, seed<<1|1))
	}
	return c.rng
}

// pathSeed hashes a case path into a stable 64-bit seed.
func pathSeed(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}

// Logf writes a log line attributed to the case.
func (c *C) Logf(format string, args ...any) {
	c.log.Info(fmt.Sprintf(format, args...), "case", c.path)
}

// Errorf records a check failure and continues executing the case
// body. A case reports every violation it finds rather than stopping
// at the first one.
func (c *C) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Info("check failed", "case", c.path, "reason", msg)
	c.setStatus(Fail, msg)
}

// Fatalf records a check failure and stops the case immediately.
// Reserve it for failures that make the rest of the body meaningless.
func (c *C) Fatalf(format string, args ...any) {
	panic(caseAbort{status: Fail, message: fmt.Sprintf(format, args...)})
}

// Skipf marks the case NotSupported and stops it immediately. Use it
// when a required feature, format, or device is unavailable.
func (c *C) Skipf(format string, args ...any) {
	panic(caseAbort{status: NotSupported, message: fmt.Sprintf(format, args...)})
}

// Cleanup registers a function to run after the case finishes, in
// last-in-first-out order. Graphics objects created by a case are
// owned by that case; Cleanup is the conventional place to release
// them.
func (c *C) Cleanup(f func()) {
	c.cleanups = append(c.cleanups, f)
}

// setStatus records a status, never downgrading. The first message at
// the most severe status wins.
func (c *C) setStatus(s Status, msg string) {
	if s > c.status {
		c.status = s
		c.message = msg
	}
}

// result returns the terminal result of the case.
func (c *C) result() Result {
	return Result{Status: c.status, Message: c.message}
}

// runCleanups executes registered cleanups in reverse order. A panic
// in one cleanup is recovered and logged so the rest still run.
func (c *C) runCleanups() {
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		f := c.cleanups[i]
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.log.Warn("panic in case cleanup", "case", c.path, "panic", r)
				}
			}()
			f()
		}()
	}
	c.cleanups = nil
}
