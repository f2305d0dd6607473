package rules

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bundlekit/stylerules/pkg/diagnostics"
	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/logging"
	"github.com/bundlekit/stylerules/pkg/patterns"
	"github.com/bundlekit/stylerules/pkg/transform"
	"github.com/bundlekit/stylerules/pkg/types"
)

// priorityStep spaces builder-assigned priorities so that collaborators
// inserting host-level rules between ours have room to do so
const priorityStep = 10

// Options tune builder output. The zero value is a complete configuration.
type Options struct {
	// AssetNamingTemplate overrides DefaultAssetNamingTemplate
	AssetNamingTemplate string

	// ExtractFilenameTemplate overrides DefaultExtractFilenameTemplate
	ExtractFilenameTemplate string

	// ExtractChunkFilenameTemplate overrides DefaultExtractChunkFilenameTemplate
	ExtractChunkFilenameTemplate string

	// EmitOrderWarnings re-enables the bundler's cross-module stylesheet
	// ordering warnings. Suppressing them is the default stance: rule
	// ordering here is deliberate, and the bundler cannot know that.
	EmitOrderWarnings bool

	// SupportLegacy is threaded into the transform resolver
	SupportLegacy bool
}

// Builder derives the complete ordered rule set from a build context.
// Deterministic: the same context always yields a structurally identical
// rule set.
type Builder struct {
	resolver transform.Resolver
	opts     Options
	logger   zerolog.Logger
}

// NewBuilder creates a builder over the given transform resolver
func NewBuilder(resolver transform.Resolver, opts Options) *Builder {
	if opts.AssetNamingTemplate == "" {
		opts.AssetNamingTemplate = DefaultAssetNamingTemplate
	}
	if opts.ExtractFilenameTemplate == "" {
		opts.ExtractFilenameTemplate = DefaultExtractFilenameTemplate
	}
	if opts.ExtractChunkFilenameTemplate == "" {
		opts.ExtractChunkFilenameTemplate = DefaultExtractChunkFilenameTemplate
	}
	return &Builder{
		resolver: resolver,
		opts:     opts,
		logger:   logging.GetLogger("rules.builder"),
	}
}

// emitter collects rules and assigns strictly increasing priorities
type emitter struct {
	rules  []Rule
	next   int
	logger zerolog.Logger
}

func (e *emitter) emit(name string, pattern patterns.Pattern, action types.Action, sideEffects bool) {
	e.next += priorityStep
	e.logger.Debug().
		Str("rule", name).
		Int("priority", e.next).
		Str("action", string(action.Kind())).
		Msg("emitting rule")
	e.rules = append(e.rules, Rule{
		Name:        name,
		Priority:    e.next,
		Pattern:     pattern,
		Action:      action,
		SideEffects: sideEffects,
	})
}

// Build produces the ordered stylesheet policy for bctx. It blocks at most
// once, on the external transform resolution; a resolution failure is
// build-fatal and returned verbatim.
func (b *Builder) Build(ctx context.Context, bctx *types.BuildContext) (*RuleSet, error) {
	if bctx == nil {
		return nil, errors.New(errors.ErrInvalidInput, "build context must not be nil")
	}
	if b.resolver == nil {
		return nil, errors.New(errors.ErrTransformResolve, "no transform resolver configured")
	}

	transformCfg, err := b.resolver.Resolve(ctx, transform.Options{
		RootDir:       bctx.RootDir,
		Production:    bctx.Production,
		SupportLegacy: b.opts.SupportLegacy,
	})
	if err != nil {
		return nil, err
	}

	anyStylesheet := patterns.MustSuffix(StyleSuffixes...)
	moduleStylesheet := patterns.MustSuffix(ModuleSuffixes...)
	globalStylesheet := patterns.And(anyStylesheet, patterns.Not(moduleStylesheet))

	firstPartyIssuer, err := patterns.NewIssuerScope(bctx.RootDir, bctx.Vendored())
	if err != nil {
		return nil, err
	}
	vendoredIssuer, err := patterns.NewVendoredIssuer(bctx.Vendored())
	if err != nil {
		return nil, err
	}

	e := &emitter{logger: b.logger}

	// 1. Occupy the host bundler's built-in stylesheet rule slot so its
	// default never fires for files this policy governs.
	e.emit("builtin-stylesheet-disabled", patterns.NewNever(), types.Ignore{}, false)

	// 2. Stylesheets must never be reachable from the top-level document
	// file, independent of scope, target, or mode.
	if bctx.DocumentFile != "" {
		documentIssuer, err := patterns.NewIssuer(bctx.DocumentFile)
		if err != nil {
			return nil, err
		}
		e.emit("document-import",
			patterns.And(anyStylesheet, documentIssuer),
			types.Reject{Diagnostic: diagnostics.KindDocumentImport},
			false)
	}

	// 3 and 4. Module-scoped stylesheets, partitioned by issuer scope.
	// First-party imports compile with sideEffects=false: the transform
	// contract guarantees no global selectors leak, so dead-code
	// elimination is safe. Everything else with the module naming is
	// rejected; the complementary scope conditions make the pair disjoint
	// and exhaustive over module-named candidates.
	e.emit("module-compile",
		patterns.And(moduleStylesheet, firstPartyIssuer),
		types.CompileModule{Transform: transformCfg},
		false)
	e.emit("module-outside-root",
		patterns.And(moduleStylesheet, patterns.Not(firstPartyIssuer)),
		types.Reject{Diagnostic: diagnostics.KindModuleOutsideRoot},
		false)

	// 5. Server output must not embody CSS side effects; the entry-file
	// accept path only exists on client builds with a designated entry.
	switch bctx.Target.Kind() {
	case types.TargetServer:
		e.emit("global-server-ignore", globalStylesheet, types.Ignore{}, false)
	case types.TargetClientWithEntry:
		entry, _ := bctx.Target.EntryFile()
		entryIssuer, err := patterns.NewIssuer(entry)
		if err != nil {
			return nil, err
		}
		e.emit("global-entry-compile",
			patterns.And(globalStylesheet, entryIssuer),
			types.CompileGlobal{Transform: transformCfg},
			true)
	case types.TargetClientWithoutEntry:
		// no accept path for global stylesheets
	}

	// 6 and 7. Remaining global stylesheet imports are policy violations:
	// first the vendored ones, then the catch-all enforcing "global CSS
	// only from the designated entry point".
	e.emit("global-from-dependency",
		patterns.And(globalStylesheet, vendoredIssuer),
		types.Reject{Diagnostic: diagnostics.KindGlobalFromDependency},
		false)
	e.emit("global-outside-entry",
		globalStylesheet,
		types.Reject{Diagnostic: diagnostics.KindGlobalOutsideEntry},
		false)

	// 8. url() references issued from inside a stylesheet become static
	// assets on client builds. Stylesheet-suffixed paths never reach this
	// rule: rules 3 through 7 are exhaustive over them.
	if bctx.Target.IsClient() {
		e.emit("stylesheet-asset",
			patterns.And(
				patterns.Not(patterns.MustSuffix(SpecialCasedSuffixes...)),
				patterns.MustIssuerSuffix(StyleSuffixes...)),
			types.AssetReference{NamingTemplate: b.opts.AssetNamingTemplate},
			false)
	}

	// 9. Production client builds extract matched stylesheets into
	// content-hashed standalone files.
	var extraction *types.ExtractionDirective
	if bctx.Target.IsClient() && bctx.Production {
		extraction = &types.ExtractionDirective{
			FilenameTemplate:      b.opts.ExtractFilenameTemplate,
			ChunkFilenameTemplate: b.opts.ExtractChunkFilenameTemplate,
			IgnoreOrderWarnings:   !b.opts.EmitOrderWarnings,
		}
	}

	rs, err := NewRuleSet(e.rules, extraction)
	if err != nil {
		return nil, err
	}

	b.logger.Info().
		Int("rules", rs.Len()).
		Bool("production", bctx.Production).
		Bool("server", bctx.Target.IsServer()).
		Bool("extraction", extraction != nil).
		Msg("built stylesheet rule set")

	return rs, nil
}
