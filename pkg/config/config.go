// Package config loads the engine configuration that the surrounding build
// system would otherwise supply programmatically: the build context fields
// plus builder tuning. Precedence: embedded defaults, then a config file
// (TOML or YAML), then STYLERULES_* environment variables.
package config

import (
	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/rules"
	"github.com/bundlekit/stylerules/pkg/types"
)

// Target names accepted in configuration
const (
	TargetServer = "server"
	TargetClient = "client"
)

// Config is the user-facing configuration surface
type Config struct {
	// RootDir is the absolute path of the application source tree
	RootDir string `koanf:"root_dir" toml:"root_dir"`

	// Target selects the build target: "server" or "client"
	Target string `koanf:"target" toml:"target"`

	// Production selects production mode
	Production bool `koanf:"production" toml:"production"`

	// EntryFile is the designated global-stylesheet entry file
	// (client builds only)
	EntryFile string `koanf:"entry_file" toml:"entry_file"`

	// DocumentFile is the top-level document/shell file, if any
	DocumentFile string `koanf:"document_file" toml:"document_file"`

	// VendoredDirs are directory names treated as third-party scope
	VendoredDirs []string `koanf:"vendored_dirs" toml:"vendored_dirs"`

	// AssetNamingTemplate names static assets referenced from stylesheets
	AssetNamingTemplate string `koanf:"asset_naming_template" toml:"asset_naming_template"`

	// ExtractFilenameTemplate names extracted entry-chunk stylesheets
	ExtractFilenameTemplate string `koanf:"extract_filename_template" toml:"extract_filename_template"`

	// ExtractChunkFilenameTemplate names extracted lazy-chunk stylesheets
	ExtractChunkFilenameTemplate string `koanf:"extract_chunk_filename_template" toml:"extract_chunk_filename_template"`

	// EmitOrderWarnings re-enables cross-module stylesheet ordering warnings
	EmitOrderWarnings bool `koanf:"emit_order_warnings" toml:"emit_order_warnings"`

	// SupportLegacy enables compatibility transforms for older setups
	SupportLegacy bool `koanf:"support_legacy" toml:"support_legacy"`
}

// Default returns the built-in configuration before file and environment
// overrides
func Default() *Config {
	return &Config{
		Target:                       TargetClient,
		VendoredDirs:                 []string{"node_modules"},
		AssetNamingTemplate:          rules.DefaultAssetNamingTemplate,
		ExtractFilenameTemplate:      rules.DefaultExtractFilenameTemplate,
		ExtractChunkFilenameTemplate: rules.DefaultExtractChunkFilenameTemplate,
	}
}

// BuildContext validates the configuration into an immutable build context
func (c *Config) BuildContext() (*types.BuildContext, error) {
	var isServer, isClient bool
	switch c.Target {
	case TargetServer:
		isServer = true
	case TargetClient:
		isClient = true
	default:
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"target must be %q or %q, got %q", TargetServer, TargetClient, c.Target)
	}

	bctx, err := types.NewBuildContext(c.RootDir, isServer, isClient, c.Production, c.EntryFile)
	if err != nil {
		return nil, err
	}
	bctx.DocumentFile = c.DocumentFile
	bctx.VendoredDirs = c.VendoredDirs
	return bctx, nil
}

// BuilderOptions maps the configuration onto builder tuning
func (c *Config) BuilderOptions() rules.Options {
	return rules.Options{
		AssetNamingTemplate:          c.AssetNamingTemplate,
		ExtractFilenameTemplate:      c.ExtractFilenameTemplate,
		ExtractChunkFilenameTemplate: c.ExtractChunkFilenameTemplate,
		EmitOrderWarnings:            c.EmitOrderWarnings,
		SupportLegacy:                c.SupportLegacy,
	}
}
