package rules

import (
	"github.com/rs/zerolog"

	"github.com/bundlekit/stylerules/pkg/logging"
	"github.com/bundlekit/stylerules/pkg/types"
)

// Matcher resolves candidates against an immutable rule set. It holds no
// per-candidate state, so one Matcher may serve many goroutines.
type Matcher struct {
	logger zerolog.Logger
}

// NewMatcher creates a new matcher
func NewMatcher() *Matcher {
	return &Matcher{
		logger: logging.GetLogger("rules.matcher"),
	}
}

// Resolve scans rules in ascending priority order and returns the first
// match. ok is false when no rule claims the candidate, which means
// default/unhandled passthrough for the caller.
func (m *Matcher) Resolve(rs *RuleSet, c types.Candidate) (Rule, bool) {
	for _, rule := range rs.rules {
		if rule.Pattern.Match(c) {
			m.logger.Trace().
				Str("path", c.Path).
				Str("issuer", c.Issuer).
				Str("rule", rule.Name).
				Str("action", string(rule.Action.Kind())).
				Msg("candidate matched rule")
			return rule, true
		}
	}

	m.logger.Trace().
		Str("path", c.Path).
		Str("issuer", c.Issuer).
		Msg("candidate matched no rule")
	return Rule{}, false
}

// ResolveAction is Resolve reduced to the action, for callers that do not
// care which rule fired
func (m *Matcher) ResolveAction(rs *RuleSet, c types.Candidate) (types.Action, bool) {
	rule, ok := m.Resolve(rs, c)
	if !ok {
		return nil, false
	}
	return rule.Action, true
}
