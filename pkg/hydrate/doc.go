// Package hydrate takes over selected elements of a pre-existing HTML tree
// and splices in live replacement subtrees, leaving everything else intact.
//
// The tree was not produced by Graft: it came from the host parser, a file,
// a server response, or markup injected by a third party. A caller supplies
// a Replacer that inspects each element and optionally returns a Builder for
// its replacement. The engine walks the subtree once, in document order, and
// for every match builds the replacement, inserts it immediately before the
// matched element, and detaches the element. Replacements are never
// re-visited by the same pass: a builder that wants its own output hydrated
// further calls back into the engine itself (see RenderChildrenCont), which
// yields hierarchical, caller-controlled recursion.
//
// Every spliced-in subtree registers exactly one disposal callback on the
// reactive.Owner supplied to the pass. The subtree stays live until that
// owner is disposed, which may be long after the traversal returned.
//
// Invariant violations - extracting from a captured element that is no
// longer attached, or matching an element that has no parent - are
// programming errors in the embedding application and panic; they are never
// returned as recoverable errors. Predicate and builder failures are not
// caught either: they abort the whole pass, and splices already performed
// stay in place.
package hydrate
