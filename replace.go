package pattern

import (
	"strings"
)

// Replacer computes the replacement for one match. Returning false keeps the
// matched text as it is.
type Replacer func(m *Match) (string, bool)

// ReplaceFirst replaces the leftmost match in subject with template expanded
// against it (see [Match.Expand]). Without a match subject is returned as is.
func (p *Pattern) ReplaceFirst(subject, template string) string {
	return p.replace(subject, 1, expander(template))
}

// ReplaceAll replaces every match in subject with template expanded against
// that match.
func (p *Pattern) ReplaceAll(subject, template string) string {
	return p.replace(subject, -1, expander(template))
}

// ReplaceFirstFunc replaces the leftmost match in subject with the value fn
// returns for it.
func (p *Pattern) ReplaceFirstFunc(subject string, fn Replacer) string {
	return p.replace(subject, 1, fn)
}

// ReplaceAllFunc replaces every match in subject with the value fn returns
// for it. Matches for which fn returns false keep their original text.
func (p *Pattern) ReplaceAllFunc(subject string, fn Replacer) string {
	return p.replace(subject, -1, fn)
}

func expander(template string) Replacer {
	return func(m *Match) (string, bool) {
		return m.Expand(template), true
	}
}

// replace rewrites at most limit matches, or all of them when limit < 0.
func (p *Pattern) replace(subject string, limit int, fn Replacer) string {
	var b strings.Builder

	last, n := 0, 0
	for m := range p.FindAll(subject) {
		start, end := m.Index()
		if start < last {
			continue
		}

		b.WriteString(subject[last:start])
		if s, ok := fn(m); ok {
			b.WriteString(s)
		} else {
			b.WriteString(subject[start:end])
		}

		last = end
		n++
		if n == limit {
			break
		}
	}

	if n == 0 {
		return subject
	}

	b.WriteString(subject[last:])
	return b.String()
}

// Expand returns template with its references replaced by the groups of m:
//
//	$n, ${n}   group n; $0 is the whole match
//	${name}    the group called name
//	$$         a literal $
//	\c         the character c, literally
//
// After $ digits are taken for as long as they still name a group of the
// pattern, so with two groups $10 is group 1 followed by "0". References to
// unknown or absent groups expand to the empty string. A $ that starts no
// reference is kept as is.
func (m *Match) Expand(template string) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '\\' && i+1 < len(template):
			i++
			b.WriteByte(template[i])
		case c == '$' && i+1 < len(template):
			ref, width := m.reference(template[i+1:])
			if width == 0 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(ref)
			i += width
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// reference resolves the reference that follows a '$' at the start of s and
// reports how many bytes of s it spans; 0 means s starts no reference.
func (m *Match) reference(s string) (string, int) {
	switch c := s[0]; {
	case c == '$':
		return "$", 1
	case c == '{':
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return "", 0
		}
		g, _ := m.groupByRef(s[1:end])
		return g, end + 1
	case isDigit(c):
		n, width := int(c-'0'), 1
		for width < len(s) && isDigit(s[width]) {
			next := n*10 + int(s[width]-'0')
			if next > m.p.NumGroups() {
				break
			}
			n = next
			width++
		}
		g, _ := m.Group(n)
		return g, width
	}

	return "", 0
}

// groupByRef looks a ${...} reference up as a group number when it is all
// digits and as a name otherwise.
func (m *Match) groupByRef(ref string) (string, bool) {
	n := 0
	for i := 0; i < len(ref); i++ {
		if !isDigit(ref[i]) {
			return m.NamedGroup(ref)
		}
		n = n*10 + int(ref[i]-'0')
		if n > m.p.NumGroups() {
			return "", false
		}
	}
	return m.Group(n)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
