package pattern

import (
	"go.dw1.io/pattern/internal/json"
)

// Match is one successful match of a Pattern over a subject string.
type Match struct {
	p       *Pattern
	subject string
	loc     []int
}

// Group returns the text of capturing group i; 0 is the whole match. ok is
// false when i is out of range or the group did not take part in the match.
func (m *Match) Group(i int) (string, bool) {
	start, end, ok := m.GroupSpan(i)
	if !ok {
		return "", false
	}
	return m.subject[start:end], true
}

// NamedGroup returns the text of the group called name. ok is false for a
// name the pattern does not know and for a group that did not take part in
// the match.
func (m *Match) NamedGroup(name string) (string, bool) {
	return m.Group(m.p.GroupIndex(name))
}

// GroupSpan returns the byte offsets of group i in the subject. A span that
// does not lie within the subject is reported as absent.
func (m *Match) GroupSpan(i int) (start, end int, ok bool) {
	if i < 0 || 2*i+1 >= len(m.loc) {
		return -1, -1, false
	}

	start, end = m.loc[2*i], m.loc[2*i+1]
	if start < 0 || end < start || end > len(m.subject) {
		return -1, -1, false
	}
	return start, end, true
}

// Matched returns the whole matched text.
func (m *Match) Matched() string {
	s, _ := m.Group(0)
	return s
}

// Index returns the byte offsets of the whole match in the subject.
func (m *Match) Index() (start, end int) {
	start, end, _ = m.GroupSpan(0)
	return start, end
}

// Subgroups returns every capturing group in declaration order. A nil entry
// is a group that did not take part in the match.
func (m *Match) Subgroups() []*string {
	groups := make([]*string, m.p.NumGroups())
	for i := range groups {
		if s, ok := m.Group(i + 1); ok {
			groups[i] = &s
		}
	}
	return groups
}

// Pattern returns the pattern that produced m.
func (m *Match) Pattern() *Pattern {
	return m.p
}

func (m *Match) String() string {
	return m.Matched()
}

type matchJSON struct {
	Matched string             `json:"matched"`
	Index   [2]int             `json:"index"`
	Groups  []*string          `json:"groups"`
	Named   map[string]*string `json:"named,omitempty"`
}

// MarshalJSON renders the match with its groups; absent groups are null.
func (m *Match) MarshalJSON() ([]byte, error) {
	start, end := m.Index()
	out := matchJSON{
		Matched: m.Matched(),
		Index:   [2]int{start, end},
		Groups:  m.Subgroups(),
	}

	for i, name := range m.p.names {
		if name == "" || i > m.p.NumGroups() {
			continue
		}
		if out.Named == nil {
			out.Named = make(map[string]*string)
		}
		if _, taken := out.Named[name]; !taken {
			out.Named[name] = out.Groups[i-1]
		}
	}

	return json.Marshal(out)
}
