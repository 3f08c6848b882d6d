package engine

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
	re2 "github.com/wasilibs/go-re2"
)

// Kind identifies a regex backend.
type Kind uint8

const (
	// Auto picks RE2 unless the pattern needs PCRE-only syntax.
	Auto Kind = iota
	// Core is coregex. It is only used when asked for by name: its capture
	// spans are unreliable for lazy quantifiers and it ignores \b.
	Core
	// PCRE is regexp2.
	PCRE
	// RE2 is go-re2.
	RE2
)

// String returns the lower-case backend name.
func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Core:
		return "core"
	case PCRE:
		return "pcre"
	case RE2:
		return "re2"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "core", "coregex":
		return Core, nil
	case "pcre", "regexp2":
		return PCRE, nil
	case "re2":
		return RE2, nil
	}

	return Auto, fmt.Errorf("unknown engine %q", s)
}

// batchStart is the size of the first batch requested from stdlib-shaped
// engines while iterating; every further batch doubles it.
const batchStart = 4

// stdEngine is the subset of the standard library regexp API that both
// coregex and go-re2 implement.
type stdEngine interface {
	MatchString(s string) bool
	FindStringSubmatchIndex(s string) []int
	FindAllStringSubmatchIndex(s string, n int) [][]int
	NumSubexp() int
	SubexpNames() []string
}

var (
	_ stdEngine = (*coregex.Regex)(nil)
	_ stdEngine = (*re2.Regexp)(nil)
)

// Regexp is a compiled regular expression that delegates to the backend
// chosen at compile time. It is immutable and safe for concurrent use.
type Regexp struct {
	pattern string
	kind    Kind
	std     stdEngine
	pcre    *regexp2.Regexp
	names   []string

	// order maps a group's declaration position to its regexp2 number.
	order []int
}

// Compile parses a regular expression with the requested backend. For [Auto],
// patterns that require PCRE/Perl-only features (detected by requiresPCRE)
// are compiled with regexp2 and everything else uses go-re2. The backend's
// error is returned unmodified.
func Compile(pattern string, kind Kind) (*Regexp, error) {
	if kind == Auto {
		kind = RE2
		if requiresPCRE(pattern) {
			kind = PCRE
		}
	}

	r := &Regexp{pattern: pattern, kind: kind}
	switch kind {
	case Core:
		re, err := coregex.Compile(pattern)
		if err != nil {
			return nil, err
		}
		r.std = re
	case RE2:
		re, err := re2.Compile(pattern)
		if err != nil {
			return nil, err
		}
		r.std = re
	case PCRE:
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		r.pcre = re
		r.order = captureNumbers(re, captureOrder(pattern))
	default:
		return nil, fmt.Errorf("unknown engine %v", kind)
	}

	r.names = r.subexpNames()

	return r, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string, kind Kind) *Regexp {
	re, err := Compile(pattern, kind)
	if err != nil {
		panic(err)
	}
	return re
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Kind reports the backend that compiled the Regexp. It is never [Auto].
func (r *Regexp) Kind() Kind {
	return r.kind
}

// NumSubexp returns the number of capturing groups in this Regexp.
func (r *Regexp) NumSubexp() int {
	return len(r.names) - 1
}

// SubexpNames returns the names the pattern itself gives its capturing
// groups. names[0] is always empty, as are unnamed groups.
func (r *Regexp) SubexpNames() []string {
	return append([]string(nil), r.names...)
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.std != nil {
		return r.std.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches, or nil when there is none.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.std != nil {
		return r.fit(r.std.FindStringSubmatchIndex(s))
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return r.groupIndexes(byteOffsets(s), m)
}

// AllStringSubmatchIndex returns a sequence over the index pairs of every
// successive, non-overlapping match in s. Matches are produced on demand and
// every call starts a fresh scan. Zero-length matches never stall the scan.
func (r *Regexp) AllStringSubmatchIndex(s string) iter.Seq[[]int] {
	if r.std != nil {
		return r.stdAll(s)
	}

	return r.pcreAll(s)
}

// stdAll pulls matches from a stdlib-shaped engine in batches of doubling
// size. The engines cannot resume a scan at an offset without losing the
// surrounding context (anchors, word boundaries), so each batch rescans from
// the start; doubling bounds that to about twice a single full scan.
func (r *Regexp) stdAll(s string) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		seen, n := 0, batchStart
		for {
			batch := r.std.FindAllStringSubmatchIndex(s, n)
			if len(batch) <= seen {
				return
			}

			for _, loc := range batch[seen:] {
				if !yield(r.fit(loc)) {
					return
				}
			}

			if len(batch) < n {
				return
			}

			seen = len(batch)
			n *= 2
		}
	}
}

func (r *Regexp) pcreAll(s string) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		var offsets []int

		m, err := r.pcre.FindStringMatch(s)
		for err == nil && m != nil {
			if offsets == nil {
				offsets = byteOffsets(s)
			}

			if !yield(r.groupIndexes(offsets, m)) {
				return
			}

			m, err = r.pcre.FindNextMatch(m)
		}
	}
}

// fit trims or pads a stdlib-shaped index slice to exactly one pair per
// group in r.names.
func (r *Regexp) fit(loc []int) []int {
	if loc == nil || len(loc) == 2*len(r.names) {
		return loc
	}

	out := make([]int, 2*len(r.names))
	n := copy(out, loc)
	for i := n; i < len(out); i++ {
		out[i] = -1
	}

	return out
}

func (r *Regexp) subexpNames() []string {
	if r.std != nil {
		// NOTE(dwisiswant0): coregex counts group 0 in NumSubexp, so the
		// names slice is the only count both engines agree on.
		names := r.std.SubexpNames()
		if len(names) == 0 {
			return []string{""}
		}
		return append([]string(nil), names...)
	}

	names := make([]string, len(r.order))
	for i, num := range r.order {
		if i == 0 {
			continue
		}

		// NOTE(dwisiswant0): regexp2 reports the number itself as the name
		// of an unnamed group.
		if name := r.pcre.GroupNameFromNumber(num); name != strconv.Itoa(num) {
			names[i] = name
		}
	}

	return names
}

// groupIndexes converts the rune-based spans of a regexp2 match into byte
// index pairs in declaration order, using offsets from byteOffsets.
func (r *Regexp) groupIndexes(offsets []int, m *regexp2.Match) []int {
	out := make([]int, 2*len(r.order))
	for i := range out {
		out[i] = -1
	}

	for i, num := range r.order {
		g := m.GroupByNumber(num)
		if g == nil || len(g.Captures) == 0 {
			continue
		}

		out[2*i] = offsets[g.Index]
		out[2*i+1] = offsets[g.Index+g.Length]
	}

	return out
}
