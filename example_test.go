package glcts_test

import (
	"fmt"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/gl/glsoft"
)

func Example() {
	ctx := glsoft.New(64, 64)
	s := glcts.New("demo", glcts.WithContext(ctx))

	buffers := glcts.NewGroup("buffers", "buffer object checks")
	buffers.Add(glcts.NewCase("bind_invalid_target",
		"binding to a bogus target must raise INVALID_ENUM",
		func(c *glcts.C) {
			c.GL().BindBuffer(gl.Enum(0xFFFF), 0)
			c.ExpectError(gl.InvalidEnum)
		}))
	s.Root().Add(buffers)

	report, err := s.Run()
	if err != nil {
		fmt.Println("setup failed:", err)
		return
	}
	fmt.Println(report.Summary())
	// Output:
	// demo: 1 executed, 1 passed, 0 failed, 0 not supported, 0 internal errors
}

func Example_iterating() {
	s := glcts.New("demo")

	sizes := []int{16, 64, 256}
	s.Root().Add(glcts.NewCaseHooks("sizes",
		"one iteration per size",
		glcts.Hooks{
			Iterate: func(c *glcts.C) glcts.Progress {
				_ = sizes[c.Iteration()]
				if c.Iteration()+1 < len(sizes) {
					return glcts.Continue
				}
				return glcts.Stop
			},
		}))

	report, _ := s.Run()
	fmt.Println(report.Summary())
	// Output:
	// demo: 1 executed, 1 passed, 0 failed, 0 not supported, 0 internal errors
}
