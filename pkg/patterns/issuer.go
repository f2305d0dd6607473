package patterns

import (
	"fmt"
	"path/filepath"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/types"
)

// IssuerPatternName is the name used to reference this pattern kind
const IssuerPatternName = "issuer"

// IssuerPattern matches candidates imported from one exact file
type IssuerPattern struct {
	issuer string
}

// NewIssuer creates an IssuerPattern for the given absolute path
func NewIssuer(issuer string) (*IssuerPattern, error) {
	if issuer == "" {
		return nil, errors.New(errors.ErrPatternInvalid, "issuer pattern requires a path")
	}
	return &IssuerPattern{issuer: filepath.Clean(issuer)}, nil
}

// Name returns the name of this pattern kind
func (p *IssuerPattern) Name() string {
	return IssuerPatternName
}

// Describe returns a human-readable description of this pattern
func (p *IssuerPattern) Describe() string {
	return fmt.Sprintf("issuer is %s", p.issuer)
}

// Match reports whether the candidate was imported from exactly this file.
// Candidates without an issuer never match.
func (p *IssuerPattern) Match(c types.Candidate) bool {
	if !c.HasIssuer() {
		return false
	}
	return filepath.Clean(c.Issuer) == p.issuer
}
