package gl

import "testing"

func TestEnumStringErrors(t *testing.T) {
	tests := []struct {
		e    Enum
		want string
	}{
		{NoError, "GL_NO_ERROR"},
		{InvalidEnum, "GL_INVALID_ENUM"},
		{InvalidValue, "GL_INVALID_VALUE"},
		{InvalidOperation, "GL_INVALID_OPERATION"},
		{InvalidFramebufferOperation, "GL_INVALID_FRAMEBUFFER_OPERATION"},
		{OutOfMemory, "GL_OUT_OF_MEMORY"},
		{ContextLost, "GL_CONTEXT_LOST"},
		{FramebufferComplete, "GL_FRAMEBUFFER_COMPLETE"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("%#x.String() = %q, want %q", uint32(tt.e), got, tt.want)
		}
	}
}

func TestEnumStringUnknownIsHex(t *testing.T) {
	if got := Enum(0x8CA6).String(); got != "0x8CA6" {
		t.Errorf("unknown enum rendered as %q, want hex", got)
	}
}

// The framebuffer and renderbuffer object handle types share the
// package with the bind-target enums of the same objects; both name
// families must stay usable side by side.
func TestFramebufferNamesDistinctFromTargets(t *testing.T) {
	var fb Framebuffer
	var rb Renderbuffer
	if fb != 0 || rb != 0 {
		t.Fatalf("zero handles = (%d, %d), want (0, 0)", fb, rb)
	}
	if FramebufferTarget != 0x8D40 {
		t.Errorf("FramebufferTarget = %#x, want 0x8D40", uint32(FramebufferTarget))
	}
	if RenderbufferTarget != 0x8D41 {
		t.Errorf("RenderbufferTarget = %#x, want 0x8D41", uint32(RenderbufferTarget))
	}
}

// errorQueue is a Context stub whose error register replays a fixed
// sequence. Only GetError is implemented; DrainErrors touches nothing
// else.
type errorQueue struct {
	Context
	errs []Enum
}

func (q *errorQueue) GetError() Enum {
	if len(q.errs) == 0 {
		return NoError
	}
	e := q.errs[0]
	q.errs = q.errs[1:]
	return e
}

func TestDrainErrorsCollectsUntilClean(t *testing.T) {
	q := &errorQueue{errs: []Enum{InvalidEnum, InvalidValue, InvalidOperation}}
	got := DrainErrors(q)
	if len(got) != 3 {
		t.Fatalf("DrainErrors() = %v, want 3 errors", got)
	}
	want := []Enum{InvalidEnum, InvalidValue, InvalidOperation}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drained[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if q.GetError() != NoError {
		t.Error("register not clean after drain")
	}
}

func TestDrainErrorsCleanRegister(t *testing.T) {
	q := &errorQueue{}
	if got := DrainErrors(q); len(got) != 0 {
		t.Errorf("DrainErrors() on a clean register = %v, want empty", got)
	}
}

func TestDrainErrorsBounded(t *testing.T) {
	// A broken context that never reads clean must not hang the
	// harness.
	errs := make([]Enum, 1000)
	for i := range errs {
		errs[i] = InvalidEnum
	}
	q := &errorQueue{errs: errs}
	got := DrainErrors(q)
	if len(got) == 0 || len(got) >= 1000 {
		t.Errorf("DrainErrors() drained %d errors, want a bounded non-zero count", len(got))
	}
}
