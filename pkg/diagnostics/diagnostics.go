// Package diagnostics renders user-facing explanations for rejected
// stylesheet imports. Messages are returned to the bundler's error-reporting
// stage, never logged from here.
package diagnostics

import (
	"fmt"
	"strings"
)

// Kind identifies the policy a rejected import violated
type Kind string

const (
	// KindDocumentImport: a stylesheet was imported from the top-level
	// document/shell file.
	KindDocumentImport Kind = "document-import"

	// KindModuleOutsideRoot: a module-scoped stylesheet was imported from
	// outside the project root, typically a vendored dependency.
	KindModuleOutsideRoot Kind = "module-outside-root"

	// KindGlobalFromDependency: a global stylesheet was imported from a
	// vendored dependency.
	KindGlobalFromDependency Kind = "global-from-dependency"

	// KindGlobalOutsideEntry: a global stylesheet was imported from
	// application code other than the designated entry file.
	KindGlobalOutsideEntry Kind = "global-outside-entry"
)

// Details carries the offending relationship for message formatting
type Details struct {
	// Path is the stylesheet that was imported
	Path string

	// Issuer is the file containing the import statement
	Issuer string

	// EntryFile is the designated global-stylesheet entry file, when one
	// is configured
	EntryFile string
}

// Describe renders the diagnostic for a rejected import. Each message names
// what was imported, from where, and what is allowed instead.
func Describe(kind Kind, d Details) string {
	switch kind {
	case KindDocumentImport:
		return fmt.Sprintf(
			"Stylesheets cannot be imported from the top-level document file.\n"+
				"  Imported: %s\n  From:     %s\n"+
				"Move the import to your designated entry file instead.%s",
			d.Path, d.Issuer, entryHint(d))

	case KindModuleOutsideRoot:
		return fmt.Sprintf(
			"Module-scoped stylesheets must live inside your application source tree.\n"+
				"  Imported: %s\n  From:     %s\n"+
				"Stylesheets from dependencies cannot use the scoped-module naming convention.",
			d.Path, d.Issuer)

	case KindGlobalFromDependency:
		return fmt.Sprintf(
			"Global stylesheets cannot be imported from within a dependency.\n"+
				"  Imported: %s\n  From:     %s\n"+
				"Copy the stylesheet into your application and import it from your entry file,\n"+
				"or use a module-scoped stylesheet (.module.css) inside your source tree.",
			d.Path, d.Issuer)

	case KindGlobalOutsideEntry:
		return fmt.Sprintf(
			"Global stylesheets can only be imported from your designated entry file.\n"+
				"  Imported: %s\n  From:     %s%s",
			d.Path, d.Issuer, entryHint(d))

	default:
		return fmt.Sprintf("Stylesheet import rejected.\n  Imported: %s\n  From:     %s", d.Path, d.Issuer)
	}
}

func entryHint(d Details) string {
	if strings.TrimSpace(d.EntryFile) == "" {
		return ""
	}
	return fmt.Sprintf("\nYour designated entry file is %s.", d.EntryFile)
}
