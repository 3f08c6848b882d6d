package pattern

// Split cuts subject at every match of p and returns the pieces in between.
// When p has capturing groups, the groups of each delimiter that took part in
// the match are placed between the two pieces around it, in group order. An
// empty match at the very start or end of subject does not cut it.
func (p *Pattern) Split(subject string) []string {
	var out []string

	last := 0
	for m := range p.FindAll(subject) {
		start, end := m.Index()
		if start < last || start == end && (start == 0 || start == len(subject)) {
			continue
		}

		out = append(out, subject[last:start])
		for i := 1; i <= p.NumGroups(); i++ {
			if g, ok := m.Group(i); ok {
				out = append(out, g)
			}
		}

		last = end
	}

	return append(out, subject[last:])
}

// Split is like [Pattern.Split] with the delimiter given as a *Pattern or as
// pattern source. A nil or uncompilable delimiter leaves subject whole, as the
// only element of the result.
func Split[P Source](subject string, delim P) []string {
	p := resolve(delim)
	if p == nil {
		return []string{subject}
	}
	return p.Split(subject)
}
