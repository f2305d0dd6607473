package types

// Candidate is a single file being considered by the matcher: the imported
// path plus the file that imported it. Candidates are ephemeral, one per
// matcher invocation, and own no resources.
type Candidate struct {
	// Path is the absolute path of the imported file
	Path string

	// Issuer is the absolute path of the file containing the import
	// statement. Empty when the import has no issuer (an entry point).
	Issuer string
}

// HasIssuer reports whether the candidate was imported from another file
func (c Candidate) HasIssuer() bool {
	return c.Issuer != ""
}
