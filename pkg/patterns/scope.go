package patterns

import (
	"fmt"
	"strings"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/types"
)

// IssuerScopePatternName is the name used to reference this pattern kind
const IssuerScopePatternName = "issuer-scope"

// IssuerScopePattern matches candidates whose issuer lies inside the project
// root and outside every vendored-dependency directory. This is the scope
// that separates first-party imports from third-party ones.
type IssuerScopePattern struct {
	root     string
	vendored []string
}

// NewIssuerScope creates an IssuerScopePattern rooted at root, excluding
// issuers under any of the vendored directory names
func NewIssuerScope(root string, vendored []string) (*IssuerScopePattern, error) {
	if root == "" {
		return nil, errors.New(errors.ErrPatternInvalid, "issuer-scope pattern requires a root directory")
	}
	return &IssuerScopePattern{root: root, vendored: vendored}, nil
}

// Name returns the name of this pattern kind
func (p *IssuerScopePattern) Name() string {
	return IssuerScopePatternName
}

// Describe returns a human-readable description of this pattern
func (p *IssuerScopePattern) Describe() string {
	if len(p.vendored) == 0 {
		return fmt.Sprintf("issuer inside %s", p.root)
	}
	return fmt.Sprintf("issuer inside %s, outside %s", p.root, strings.Join(p.vendored, "|"))
}

// Match reports whether the candidate issuer is first-party source.
// Candidates without an issuer never match.
func (p *IssuerScopePattern) Match(c types.Candidate) bool {
	if !c.HasIssuer() {
		return false
	}
	if !withinDir(c.Issuer, p.root) {
		return false
	}
	return !hasSegment(c.Issuer, p.vendored)
}

// VendoredIssuerPatternName is the name used to reference this pattern kind
const VendoredIssuerPatternName = "vendored-issuer"

// VendoredIssuerPattern matches candidates whose issuer sits under a
// vendored-dependency directory anywhere on its path
type VendoredIssuerPattern struct {
	vendored []string
}

// NewVendoredIssuer creates a VendoredIssuerPattern over the directory names
func NewVendoredIssuer(vendored []string) (*VendoredIssuerPattern, error) {
	if len(vendored) == 0 {
		return nil, errors.New(errors.ErrPatternInvalid, "vendored-issuer pattern requires at least one directory name")
	}
	return &VendoredIssuerPattern{vendored: vendored}, nil
}

// Name returns the name of this pattern kind
func (p *VendoredIssuerPattern) Name() string {
	return VendoredIssuerPatternName
}

// Describe returns a human-readable description of this pattern
func (p *VendoredIssuerPattern) Describe() string {
	return fmt.Sprintf("issuer under %s", strings.Join(p.vendored, "|"))
}

// Match reports whether the candidate issuer is third-party code.
// Candidates without an issuer never match.
func (p *VendoredIssuerPattern) Match(c types.Candidate) bool {
	if !c.HasIssuer() {
		return false
	}
	return hasSegment(c.Issuer, p.vendored)
}
