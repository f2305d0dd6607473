package types

import (
	"path/filepath"

	"github.com/bundlekit/stylerules/pkg/errors"
)

// TargetKind discriminates the BuildTarget variant
type TargetKind int

const (
	// TargetServer is a server-side build; global stylesheets are ignored
	TargetServer TargetKind = iota

	// TargetClientWithEntry is a client build with a designated entry file
	// permitted to import global stylesheets
	TargetClientWithEntry

	// TargetClientWithoutEntry is a client build with no designated entry
	// file; every global stylesheet import is a policy violation
	TargetClientWithoutEntry
)

// BuildTarget is a tagged variant over the server/client split. Modeling it
// this way makes the server-with-entry-file combination unrepresentable.
type BuildTarget struct {
	kind      TargetKind
	entryFile string
}

// ServerTarget returns the server build target
func ServerTarget() BuildTarget {
	return BuildTarget{kind: TargetServer}
}

// ClientTarget returns a client build target. An empty entryFile yields the
// without-entry variant.
func ClientTarget(entryFile string) BuildTarget {
	if entryFile == "" {
		return BuildTarget{kind: TargetClientWithoutEntry}
	}
	return BuildTarget{kind: TargetClientWithEntry, entryFile: entryFile}
}

// Kind returns the variant discriminator
func (t BuildTarget) Kind() TargetKind {
	return t.kind
}

// IsServer reports whether this is a server build
func (t BuildTarget) IsServer() bool {
	return t.kind == TargetServer
}

// IsClient reports whether this is a client build
func (t BuildTarget) IsClient() bool {
	return t.kind == TargetClientWithEntry || t.kind == TargetClientWithoutEntry
}

// EntryFile returns the designated entry file and whether one is configured
func (t BuildTarget) EntryFile() (string, bool) {
	return t.entryFile, t.kind == TargetClientWithEntry
}

// BuildContext is the immutable per-build input to the rule set builder.
// It is constructed once per build invocation and never mutated.
type BuildContext struct {
	// RootDir is the absolute path of the application source tree
	RootDir string

	// Target is the server/client build target
	Target BuildTarget

	// Production reports whether this is a production build
	Production bool

	// DocumentFile is the absolute path of the application's top-level
	// document/shell file, if one is configured. Stylesheets must never be
	// imported from it.
	DocumentFile string

	// VendoredDirs are the directory names treated as third-party scope.
	// Defaults to ["node_modules"] when empty.
	VendoredDirs []string
}

// DefaultVendoredDirs is used when a BuildContext does not name its own
var DefaultVendoredDirs = []string{"node_modules"}

// NewBuildContext validates the raw server/client flags and returns an
// immutable context. Exactly one of isServer and isClient must be true;
// anything else is a configuration fault and fails before any rule set is
// built.
func NewBuildContext(rootDir string, isServer, isClient, production bool, entryFile string) (*BuildContext, error) {
	if isServer == isClient {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"exactly one of server and client must be selected (server=%t, client=%t)", isServer, isClient)
	}
	if rootDir == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "root directory must be set")
	}
	if !filepath.IsAbs(rootDir) {
		return nil, errors.Newf(errors.ErrConfigInvalid, "root directory %q must be absolute", rootDir)
	}
	if isServer && entryFile != "" {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"entry file %q is meaningless for a server build", entryFile)
	}

	target := ServerTarget()
	if isClient {
		target = ClientTarget(entryFile)
	}

	return &BuildContext{
		RootDir:    filepath.Clean(rootDir),
		Target:     target,
		Production: production,
	}, nil
}

// Vendored returns the effective vendored directory names
func (c *BuildContext) Vendored() []string {
	if len(c.VendoredDirs) == 0 {
		return DefaultVendoredDirs
	}
	return c.VendoredDirs
}
