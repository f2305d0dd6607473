// Package patterns provides the pure predicates rules are built from.
//
// A Pattern answers a single question about a candidate file: does it match?
// Patterns never fail, never block, and never mutate anything, so an
// immutable rule set composed of them can be evaluated concurrently without
// synchronization. Composition is limited to what the stylesheet policy
// actually needs: suffix matching on the imported path, issuer identity and
// issuer scope constraints, an AND combinator, a NOT combinator, and a
// deliberately unsatisfiable pattern used to occupy a host bundler's default
// rule slot.
package patterns
