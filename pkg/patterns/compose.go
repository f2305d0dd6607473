package patterns

import (
	"fmt"
	"strings"

	"github.com/bundlekit/stylerules/pkg/types"
)

// AndPatternName is the name used to reference this pattern kind
const AndPatternName = "and"

// AndPattern matches when every member pattern matches. Member evaluation
// order carries no semantics within a single rule; members must constrain
// independent candidate fields.
type AndPattern struct {
	members []Pattern
}

// And composes patterns conjunctively. And() with no members matches
// everything, which is what a catch-all rule wants.
func And(members ...Pattern) *AndPattern {
	return &AndPattern{members: members}
}

// Name returns the name of this pattern kind
func (p *AndPattern) Name() string {
	return AndPatternName
}

// Describe returns a human-readable description of this pattern
func (p *AndPattern) Describe() string {
	if len(p.members) == 0 {
		return "matches everything"
	}
	parts := make([]string, len(p.members))
	for i, m := range p.members {
		parts[i] = m.Describe()
	}
	return strings.Join(parts, " and ")
}

// Match reports whether all member patterns match
func (p *AndPattern) Match(c types.Candidate) bool {
	for _, m := range p.members {
		if !m.Match(c) {
			return false
		}
	}
	return true
}

// NotPatternName is the name used to reference this pattern kind
const NotPatternName = "not"

// NotPattern inverts a member pattern. Used to carve disjoint issuer
// partitions out of an otherwise identical naming pattern.
type NotPattern struct {
	member Pattern
}

// Not inverts the given pattern
func Not(member Pattern) *NotPattern {
	return &NotPattern{member: member}
}

// Name returns the name of this pattern kind
func (p *NotPattern) Name() string {
	return NotPatternName
}

// Describe returns a human-readable description of this pattern
func (p *NotPattern) Describe() string {
	return fmt.Sprintf("not (%s)", p.member.Describe())
}

// Match reports whether the member pattern does not match
func (p *NotPattern) Match(c types.Candidate) bool {
	return !p.member.Match(c)
}
