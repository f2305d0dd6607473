package rules

import (
	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/types"
)

// RuleSet is the complete ordered stylesheet policy for one build context.
// It is rebuilt fresh per build, never mutated in place, and safe for
// unsynchronized concurrent matching.
type RuleSet struct {
	rules      []Rule
	extraction *types.ExtractionDirective
}

// NewRuleSet validates and freezes an ordered rule list. Priorities must be
// strictly increasing; a violation is a construction-time failure, not a
// silent reordering.
func NewRuleSet(ruleList []Rule, extraction *types.ExtractionDirective) (*RuleSet, error) {
	for i, r := range ruleList {
		if r.Name == "" {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule at position %d has no name", i)
		}
		if r.Pattern == nil {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has no pattern", r.Name)
		}
		if r.Action == nil {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has no action", r.Name)
		}
		if i > 0 && r.Priority <= ruleList[i-1].Priority {
			return nil, errors.Newf(errors.ErrRuleOrder,
				"rule %q (priority %d) does not follow %q (priority %d)",
				r.Name, r.Priority, ruleList[i-1].Name, ruleList[i-1].Priority)
		}
	}

	frozen := make([]Rule, len(ruleList))
	copy(frozen, ruleList)

	return &RuleSet{rules: frozen, extraction: extraction}, nil
}

// Rules returns a copy of the ordered rule list
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Extraction returns the extraction directive and whether one was emitted.
// Present only on production client builds.
func (rs *RuleSet) Extraction() (types.ExtractionDirective, bool) {
	if rs.extraction == nil {
		return types.ExtractionDirective{}, false
	}
	return *rs.extraction, true
}
