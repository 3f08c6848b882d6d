package pattern

import (
	"go.dw1.io/pattern/internal/engine"
)

// Engine selects the backend a pattern is compiled with.
type Engine = engine.Kind

const (
	// EngineAuto uses go-re2, or regexp2 when the pattern needs PCRE-only
	// syntax such as lookaround or backreferences.
	EngineAuto = engine.Auto
	// EngineCore always uses coregex. Its capture spans under lazy
	// quantifiers and its \b handling are not reliable.
	EngineCore = engine.Core
	// EnginePCRE always uses regexp2.
	EnginePCRE = engine.PCRE
	// EngineRE2 always uses go-re2.
	EngineRE2 = engine.RE2
)

// ParseEngine returns the Engine named s ("auto", "core", "pcre" or "re2").
func ParseEngine(s string) (Engine, error) {
	return engine.ParseKind(s)
}

// Options configures CompileWith.
type Options struct {
	// GroupNames names the first len(GroupNames) capturing groups in
	// declaration order. An empty entry keeps whatever name the pattern
	// itself gives that group.
	GroupNames []string
	// Engine picks the backend. The zero value is EngineAuto.
	Engine Engine
}

// Pattern is a compiled regular expression together with the names of its
// capturing groups.
type Pattern struct {
	re    *engine.Regexp
	names []string
	index map[string]int
}

// Compile compiles source and names its first capturing groups after
// groupNames. A syntax error is returned as a *CompileError.
func Compile(source string, groupNames ...string) (*Pattern, error) {
	return CompileWith(source, Options{GroupNames: groupNames})
}

// CompileWith is like Compile with explicit Options.
func CompileWith(source string, opts Options) (*Pattern, error) {
	re, err := engine.Compile(source, opts.Engine)
	if err != nil {
		return nil, &CompileError{Source: source, Err: err}
	}

	names := re.SubexpNames()
	for len(names) <= len(opts.GroupNames) {
		names = append(names, "")
	}
	for i, name := range opts.GroupNames {
		if name != "" {
			names[i+1] = name
		}
	}

	index := make(map[string]int, len(names))
	for i := len(names) - 1; i > 0; i-- {
		if names[i] != "" {
			index[names[i]] = i
		}
	}

	return &Pattern{re: re, names: names, index: index}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(source string, groupNames ...string) *Pattern {
	p, err := Compile(source, groupNames...)
	if err != nil {
		panic(err)
	}
	return p
}

// QuoteMeta returns s with every regular expression metacharacter escaped.
func QuoteMeta(s string) string {
	return engine.QuoteMeta(s)
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.re.String()
}

// Engine reports the backend that compiled the pattern.
func (p *Pattern) Engine() Engine {
	return p.re.Kind()
}

// NumGroups returns the number of capturing groups in the pattern.
func (p *Pattern) NumGroups() int {
	return p.re.NumSubexp()
}

// GroupNames returns the name of each capturing group, in declaration order;
// unnamed groups have an empty name. Names given to Compile beyond the
// pattern's group count are included at the end.
func (p *Pattern) GroupNames() []string {
	return append([]string(nil), p.names[1:]...)
}

// GroupIndex returns the index of the group called name, or -1. When several
// groups share a name the leftmost wins.
func (p *Pattern) GroupIndex(name string) int {
	if i, ok := p.index[name]; ok {
		return i
	}
	return -1
}

// MatchString reports whether subject contains a match of the pattern
// anywhere.
func (p *Pattern) MatchString(subject string) bool {
	return p.re.MatchString(subject)
}

// DoesNotMatch reports whether subject contains no match of the pattern.
func (p *Pattern) DoesNotMatch(subject string) bool {
	return !p.re.MatchString(subject)
}
