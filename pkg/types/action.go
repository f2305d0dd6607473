package types

import "github.com/bundlekit/stylerules/pkg/diagnostics"

// TransformConfig is the opaque value produced by the external CSS-transform
// resolver. The engine threads it unmodified into compile actions.
type TransformConfig any

// ActionKind discriminates the Action variant
type ActionKind string

const (
	ActionCompileGlobal  ActionKind = "compile-global"
	ActionCompileModule  ActionKind = "compile-module"
	ActionAssetReference ActionKind = "asset-reference"
	ActionIgnore         ActionKind = "ignore"
	ActionReject         ActionKind = "reject"
)

// Action is the closed set of processing decisions a rule can bind.
// Implementations are immutable values.
type Action interface {
	Kind() ActionKind
}

// CompileGlobal compiles the stylesheet with application-wide selector scope
type CompileGlobal struct {
	Transform TransformConfig
}

// CompileModule compiles the stylesheet with per-file generated class names
type CompileModule struct {
	Transform TransformConfig
}

// AssetReference treats the file as a static binary asset
type AssetReference struct {
	// NamingTemplate is the content-hash-based output path template
	NamingTemplate string
}

// Ignore drops the file from the build output entirely
type Ignore struct{}

// Reject fails the import with a policy diagnostic
type Reject struct {
	Diagnostic diagnostics.Kind
}

func (CompileGlobal) Kind() ActionKind  { return ActionCompileGlobal }
func (CompileModule) Kind() ActionKind  { return ActionCompileModule }
func (AssetReference) Kind() ActionKind { return ActionAssetReference }
func (Ignore) Kind() ActionKind         { return ActionIgnore }
func (Reject) Kind() ActionKind         { return ActionReject }

// ExtractionDirective instructs the output stage to emit matched stylesheets
// into standalone content-hashed files instead of inlining them. Emitted only
// for production client builds.
type ExtractionDirective struct {
	// FilenameTemplate names extracted files for entry chunks
	FilenameTemplate string

	// ChunkFilenameTemplate names extracted files for lazy chunks
	ChunkFilenameTemplate string

	// IgnoreOrderWarnings suppresses the bundler's cross-module stylesheet
	// ordering warnings. A product stance, kept as an explicit flag.
	IgnoreOrderWarnings bool
}
