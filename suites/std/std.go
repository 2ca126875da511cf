// Package std pulls in the standard conformance suites. Importing it
// for side effects registers every suite shipped with the harness:
//
//	import _ "github.com/gogpu/glcts/suites/std"
package std

import (
	_ "github.com/gogpu/glcts/suites/limits"
	_ "github.com/gogpu/glcts/suites/negative"
	_ "github.com/gogpu/glcts/suites/render"
	_ "github.com/gogpu/glcts/suites/shaders"
)
