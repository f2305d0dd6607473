// Package rules implements the stylesheet routing policy: which processing
// path every stylesheet source encountered by the bundler takes.
//
// The policy is an ordered, short-circuiting rule list. Several patterns can
// match the same candidate; only the first selected rule may fire, so rule
// ordering is the correctness contract, not an implementation detail. Getting
// it wrong produces silently wrong output (unscoped class names leaking,
// third-party styles dropped) rather than a crash.
//
// # Rule Priority
//
// The Builder assigns strictly increasing priorities in emission order and
// RuleSet construction asserts the monotonicity, so a reordering bug fails at
// build time instead of silently changing matching behavior. The Matcher
// evaluates rules in ascending priority order and returns the first match.
//
// # Emission order
//
//  1. Disable the host bundler's built-in stylesheet rule (unsatisfiable
//     pattern, never fires).
//  2. Reject any stylesheet imported from the top-level document file.
//  3. Compile module-scoped stylesheets imported from first-party source.
//  4. Reject module-scoped stylesheets imported from anywhere else.
//  5. Server builds: ignore global stylesheets. Client builds with a
//     designated entry file: compile global stylesheets imported from it.
//  6. Reject global stylesheets imported from vendored dependencies.
//  7. Reject any remaining global stylesheet import.
//  8. Client builds: route url() asset references issued from stylesheets
//     to static assets.
//  9. Production client builds: attach the extraction directive.
//
// Rules 3/4 and 6/7 partition disjoint issuer sets; evaluation-order safety
// is what makes the disjointness sufficient instead of coincidental.
package rules
