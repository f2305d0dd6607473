package patterns

import (
	"fmt"
	"strings"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/types"
)

// SuffixPatternName is the name used to reference this pattern kind
const SuffixPatternName = "suffix"

// SuffixPattern matches candidates whose imported path ends in one of a set
// of suffixes. Used for both plain extensions (".css") and the scoped-module
// naming convention (".module.css").
type SuffixPattern struct {
	suffixes []string
}

// NewSuffix creates a SuffixPattern over the given suffixes
func NewSuffix(suffixes ...string) (*SuffixPattern, error) {
	if len(suffixes) == 0 {
		return nil, errors.New(errors.ErrPatternInvalid, "suffix pattern requires at least one suffix")
	}
	cleaned := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s == "" {
			return nil, errors.New(errors.ErrPatternInvalid, "suffix pattern does not accept an empty suffix")
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		cleaned = append(cleaned, s)
	}
	return &SuffixPattern{suffixes: cleaned}, nil
}

// MustSuffix is NewSuffix for suffix sets known valid at compile time
func MustSuffix(suffixes ...string) *SuffixPattern {
	p, err := NewSuffix(suffixes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the name of this pattern kind
func (p *SuffixPattern) Name() string {
	return SuffixPatternName
}

// Describe returns a human-readable description of this pattern
func (p *SuffixPattern) Describe() string {
	return fmt.Sprintf("path ends in %s", strings.Join(p.suffixes, "|"))
}

// Match reports whether the candidate path carries one of the suffixes
func (p *SuffixPattern) Match(c types.Candidate) bool {
	for _, s := range p.suffixes {
		if strings.HasSuffix(c.Path, s) {
			return true
		}
	}
	return false
}

// IssuerSuffixPatternName is the name used to reference this pattern kind
const IssuerSuffixPatternName = "issuer-suffix"

// IssuerSuffixPattern matches candidates whose issuer ends in one of a set
// of suffixes, e.g. asset references issued from inside a stylesheet.
type IssuerSuffixPattern struct {
	suffixes []string
}

// NewIssuerSuffix creates an IssuerSuffixPattern over the given suffixes
func NewIssuerSuffix(suffixes ...string) (*IssuerSuffixPattern, error) {
	inner, err := NewSuffix(suffixes...)
	if err != nil {
		return nil, err
	}
	return &IssuerSuffixPattern{suffixes: inner.suffixes}, nil
}

// MustIssuerSuffix is NewIssuerSuffix for suffix sets known valid at compile time
func MustIssuerSuffix(suffixes ...string) *IssuerSuffixPattern {
	p, err := NewIssuerSuffix(suffixes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the name of this pattern kind
func (p *IssuerSuffixPattern) Name() string {
	return IssuerSuffixPatternName
}

// Describe returns a human-readable description of this pattern
func (p *IssuerSuffixPattern) Describe() string {
	return fmt.Sprintf("issuer ends in %s", strings.Join(p.suffixes, "|"))
}

// Match reports whether the candidate issuer carries one of the suffixes.
// Candidates without an issuer never match.
func (p *IssuerSuffixPattern) Match(c types.Candidate) bool {
	if !c.HasIssuer() {
		return false
	}
	for _, s := range p.suffixes {
		if strings.HasSuffix(c.Issuer, s) {
			return true
		}
	}
	return false
}
