// Package pattern is a small convenience layer over regular-expression
// engines.
//
// A [Pattern] is compiled once, optionally with names for its capturing
// groups, and reused. Each successful search yields a [Match] that exposes the
// whole match, positional groups and named groups; a group that did not take
// part in the match is reported as absent rather than as an empty string.
//
// On top of that sit the usual operations: [Pattern.FindFirst], the lazy
// [Pattern.FindAll], [Pattern.ReplaceFirst] and [Pattern.ReplaceAll] with a
// `$n` template or a callback, and [Pattern.Split], which keeps the captured
// parts of each delimiter.
//
// Compilation and matching are delegated to [re2] by default, to [regexp2]
// for patterns that need PCRE-only syntax, or to [coregex] when asked for
// with [CompileWith]. Regex syntax and Unicode handling are those of the
// chosen engine.
//
// A Pattern is immutable and safe for concurrent use.
package pattern
