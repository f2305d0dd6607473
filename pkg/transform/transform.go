// Package transform is the seam to the external CSS-transform toolchain.
// The engine fetches a transform configuration exactly once per build and
// threads it, unmodified and uninspected, into compile actions. Resolution
// failures are build-fatal and propagate verbatim.
package transform

import (
	"context"

	"github.com/bundlekit/stylerules/pkg/types"
)

// Options are the inputs the external resolver consumes
type Options struct {
	// RootDir is the application source root
	RootDir string

	// Production selects production-grade transforms
	Production bool

	// SupportLegacy enables compatibility transforms for older setups
	SupportLegacy bool
}

// Resolver produces the opaque transform configuration for a build
type Resolver interface {
	Resolve(ctx context.Context, opts Options) (types.TransformConfig, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ctx context.Context, opts Options) (types.TransformConfig, error)

// Resolve implements Resolver
func (f ResolverFunc) Resolve(ctx context.Context, opts Options) (types.TransformConfig, error) {
	return f(ctx, opts)
}

// StaticConfig is the transform configuration produced by Static. It only
// echoes the resolution inputs; real toolchains replace it entirely.
type StaticConfig struct {
	RootDir       string
	Production    bool
	SupportLegacy bool
}

// Static returns a resolver that never fails and produces a StaticConfig.
// It is the default for inspection tooling that has no toolchain attached.
func Static() Resolver {
	return ResolverFunc(func(_ context.Context, opts Options) (types.TransformConfig, error) {
		return StaticConfig{
			RootDir:       opts.RootDir,
			Production:    opts.Production,
			SupportLegacy: opts.SupportLegacy,
		}, nil
	})
}
