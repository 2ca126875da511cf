package glcts

import (
	"strings"

	"github.com/gogpu/glcts/gl"
)

// ExpectError checks the context's error register immediately after
// the API call under test. The register holds the first error raised
// since it was last read; ExpectError reads it, verifies the value is
// one of want, and then drains any remaining errors so stale state
// never leaks into the next check.
//
// Passing several codes expresses a one-of-N expectation: some
// operations are permitted by the GLES specification to raise either
// of two codes (for example InvalidValue or InvalidOperation for
// over-limit texture levels), and the checker treats any member of the
// set as conforming. Passing no codes asserts gl.NoError.
//
// A mismatch marks the case failed but does not stop the body, so a
// case reports every violation it finds.
func (c *C) ExpectError(want ...gl.Enum) {
	ctx := c.RequireGL()
	got := ctx.GetError()

	// The register must read clean afterwards regardless of outcome.
	drained := gl.DrainErrors(ctx)
	if len(drained) > 0 {
		c.log.Debug("drained trailing errors", "case", c.path, "errors", drained)
	}

	if len(want) == 0 {
		want = []gl.Enum{gl.NoError}
	}
	for _, w := range want {
		if got == w {
			return
		}
	}
	c.Errorf("got %v, expected %s", got, formatErrorSet(want))
}

// formatErrorSet renders an expected-error set for failure messages.
func formatErrorSet(set []gl.Enum) string {
	if len(set) == 1 {
		return set[0].String()
	}
	names := make([]string, len(set))
	for i, e := range set {
		names[i] = e.String()
	}
	return "one of {" + strings.Join(names, ", ") + "}"
}
