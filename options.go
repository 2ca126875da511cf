package glcts

import (
	"log/slog"

	"github.com/gogpu/glcts/gl"
)

// Option configures a Suite during creation.
//
// Example:
//
//	// Suite over a software reference context
//	ctx, _ := gl.Get(glsoft.Name).NewContext(256, 256)
//	s := glcts.New("gles3", glcts.WithContext(ctx))
type Option func(*suiteOptions)

// suiteOptions holds optional configuration for Suite creation.
type suiteOptions struct {
	ctx    gl.Context
	log    *slog.Logger
	filter func(path string) bool
}

// defaultSuiteOptions returns the default suite options.
func defaultSuiteOptions() suiteOptions {
	return suiteOptions{}
}

// WithContext hands the suite the graphics context under test. The
// suite never creates or owns a context; the host does (use the
// provider registry in package gl to obtain one).
func WithContext(ctx gl.Context) Option {
	return func(o *suiteOptions) {
		o.ctx = ctx
	}
}

// WithLogger sets a per-suite logger, overriding the package default
// configured with [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *suiteOptions) {
		o.log = l
	}
}

// WithFilter restricts the run to cases whose full dotted path the
// filter accepts. Filtered cases are not executed and not counted.
// Manifest run lists (package manifest) produce filters of this shape.
func WithFilter(f func(path string) bool) Option {
	return func(o *suiteOptions) {
		o.filter = f
	}
}
