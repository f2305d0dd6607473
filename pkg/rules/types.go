package rules

import (
	"github.com/bundlekit/stylerules/pkg/patterns"
	"github.com/bundlekit/stylerules/pkg/types"
)

// Rule binds a pattern to a processing action at a fixed position in the
// evaluation order. Rules are immutable once emitted.
type Rule struct {
	// Name identifies the rule in listings and logs
	Name string

	// Priority is builder-assigned, strictly increasing in emission order.
	// Evaluation order equals priority order.
	Priority int

	// Pattern decides whether the rule applies to a candidate
	Pattern patterns.Pattern

	// Action is what happens to a matched candidate
	Action types.Action

	// SideEffects is metadata for the output stage: false permits
	// dead-code elimination of the matched file.
	SideEffects bool
}

// Stylesheet naming conventions. Fixed at this layer, not user-configurable.
var (
	// StyleSuffixes are the recognized stylesheet extensions
	StyleSuffixes = []string{".css", ".scss", ".sass"}

	// ModuleSuffixes mark module-scoped stylesheets
	ModuleSuffixes = []string{".module.css", ".module.scss", ".module.sass"}

	// SpecialCasedSuffixes are names the bundler already routes itself;
	// the stylesheet-issued asset rule must not capture them
	SpecialCasedSuffixes = []string{".js", ".mjs", ".jsx", ".ts", ".tsx", ".json", ".html", ".htm", ".md", ".mdx"}
)

// Output naming defaults consumed by the asset and extraction stages
const (
	// DefaultAssetNamingTemplate names static assets referenced from
	// stylesheets
	DefaultAssetNamingTemplate = "static/media/[name].[hash:8].[ext]"

	// DefaultExtractFilenameTemplate names extracted entry-chunk stylesheets
	DefaultExtractFilenameTemplate = "static/css/[contenthash].css"

	// DefaultExtractChunkFilenameTemplate names extracted lazy-chunk
	// stylesheets
	DefaultExtractChunkFilenameTemplate = "static/css/[contenthash].css"
)
