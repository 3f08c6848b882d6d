package pattern

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLit(t *testing.T) {
	p := Lit(`^\d{3}$`)
	require.NotNil(t, p)
	assert.True(t, p.MatchString("123"))
	assert.Same(t, p, Lit(`^\d{3}$`), "compiled literals are shared")

	assert.Nil(t, Lit(`(`))
	assert.Nil(t, Lit(`(`), "failures are not remembered as patterns")
}

func TestLitConcurrent(t *testing.T) {
	const src = `concurrent-(\w+)`

	var wg sync.WaitGroup
	got := make([]*Pattern, 32)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Lit(src)
		}()
	}
	wg.Wait()

	for _, p := range got {
		assert.Same(t, got[0], p)
	}
}

func TestLitBounded(t *testing.T) {
	for i := range maxLiterals + 10 {
		require.NotNil(t, Lit(fmt.Sprintf("bounded-%d", i)))
	}
	assert.LessOrEqual(t, literals.Size(), maxLiterals+1)
}

func TestMatchesOperators(t *testing.T) {
	compiled := MustCompile(`b+`)

	assert.True(t, Matches("abbc", compiled))
	assert.True(t, Matches("abbc", `b+`))
	assert.False(t, Matches("ac", compiled))
	assert.False(t, Matches("ac", `b+`))

	assert.True(t, DoesNotMatch("ac", compiled))
	assert.True(t, DoesNotMatch("ac", `b+`))
	assert.False(t, DoesNotMatch("abbc", `b+`))

	for _, s := range []string{"", "b", "abc", "xyz"} {
		assert.Equal(t, compiled.MatchString(s), Matches(s, compiled), s)
		assert.Equal(t, compiled.MatchString(s), Matches(s, `b+`), s)
	}
}

func TestMatchesInvalidSource(t *testing.T) {
	assert.False(t, Matches("anything", `a(`))
	assert.True(t, DoesNotMatch("anything", `a(`))

	var nilPattern *Pattern
	assert.False(t, Matches("anything", nilPattern))
}

func TestLitInSwitch(t *testing.T) {
	classify := func(s string) string {
		switch {
		case Matches(s, `^\d+$`):
			return "number"
		case Matches(s, `^[a-z]+$`):
			return "word"
		case Matches(s, `(`):
			return "unreachable"
		default:
			return "other"
		}
	}

	assert.Equal(t, "number", classify("42"))
	assert.Equal(t, "word", classify("abc"))
	assert.Equal(t, "other", classify("a-b"))
}
