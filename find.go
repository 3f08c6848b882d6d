package pattern

import "iter"

// FindFirst returns the leftmost match in subject.
func (p *Pattern) FindFirst(subject string) (*Match, bool) {
	m := p.match(subject, p.re.FindStringSubmatchIndex(subject))
	return m, m != nil
}

// FindAll returns the successive non-overlapping matches in subject, from
// left to right. Matches are searched for as the sequence is consumed, and
// each call to FindAll starts over from the beginning of subject. An empty
// match never stops the scan from advancing.
func (p *Pattern) FindAll(subject string) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		for loc := range p.re.AllStringSubmatchIndex(subject) {
			m := p.match(subject, loc)
			if m == nil {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Count returns the number of non-overlapping matches in subject.
func (p *Pattern) Count(subject string) int {
	n := 0
	for range p.FindAll(subject) {
		n++
	}
	return n
}

// match wraps loc, or returns nil when loc holds no whole-match span inside
// subject.
func (p *Pattern) match(subject string, loc []int) *Match {
	m := &Match{p: p, subject: subject, loc: loc}
	if _, _, ok := m.GroupSpan(0); !ok {
		return nil
	}
	return m
}
