package patterns

import "github.com/bundlekit/stylerules/pkg/types"

// NeverPatternName is the name used to reference this pattern kind
const NeverPatternName = "never"

// NeverPattern is unsatisfiable by construction. Its only legitimate use is
// occupying the slot of a host bundler's built-in stylesheet rule so that the
// built-in default can never fire for files this engine governs. An explicit
// disable flag on the host configuration is the better integration seam when
// the host offers one; this pattern is the fallback when it does not.
type NeverPattern struct{}

// NewNever creates the unsatisfiable pattern
func NewNever() *NeverPattern {
	return &NeverPattern{}
}

// Name returns the name of this pattern kind
func (p *NeverPattern) Name() string {
	return NeverPatternName
}

// Describe returns a human-readable description of this pattern
func (p *NeverPattern) Describe() string {
	return "matches nothing"
}

// Match always reports false
func (p *NeverPattern) Match(types.Candidate) bool {
	return false
}
