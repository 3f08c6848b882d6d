// Package engine selects and drives the regular-expression backend behind a
// pattern.
//
// By default it compiles patterns with [re2] (RE2 compiled to WebAssembly).
// When the pattern requires PCRE/Perl features that RE2 cannot execute, the
// package falls back to [regexp2], renumbering its groups into declaration
// order. Callers may also pin [coregex] explicitly.
//
// Whatever the backend, results are reported as byte-offset index pairs in the
// layout used by the standard library's FindStringSubmatchIndex: pair 0 is the
// whole match, pair i is capturing group i, and -1 marks a group that did not
// participate.
package engine
