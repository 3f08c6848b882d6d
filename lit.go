package pattern

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// maxLiterals bounds the number of compiled literals Lit keeps.
const maxLiterals = 1024

var literals = xsync.NewMapOf[string, *Pattern]()

// Source is a pattern given either compiled or as source text.
type Source interface {
	*Pattern | string
}

// Lit compiles source for inline use, such as a branch of a switch, and
// returns nil when it does not compile. Compiled literals are remembered and
// shared between callers.
func Lit(source string) *Pattern {
	if p, ok := literals.Load(source); ok {
		return p
	}

	p, err := Compile(source)
	if err != nil {
		return nil
	}

	if literals.Size() >= maxLiterals {
		return p
	}

	p, _ = literals.LoadOrStore(source, p)
	return p
}

// Matches reports whether subject contains a match of p. A pattern given as
// source that does not compile matches nothing.
func Matches[P Source](subject string, p P) bool {
	re := resolve(p)
	return re != nil && re.MatchString(subject)
}

// DoesNotMatch is the negation of Matches.
func DoesNotMatch[P Source](subject string, p P) bool {
	return !Matches(subject, p)
}

func resolve[P Source](p P) *Pattern {
	switch v := any(p).(type) {
	case *Pattern:
		return v
	case string:
		return Lit(v)
	}
	return nil
}
