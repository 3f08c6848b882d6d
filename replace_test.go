package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAllTemplate(t *testing.T) {
	for _, e := range allEngines {
		p, err := CompileWith(`(.+?)([1,2,3]*)(.*)`, Options{Engine: e})
		require.NoError(t, err)
		assert.Equal(t, "l-321321-alala", p.ReplaceAll("l321321alala", "$1-$2-$3"), e)
	}
}

func TestReplaceFirstTemplate(t *testing.T) {
	for _, e := range allEngines {
		p, err := CompileWith(`(.+?)([1,2,3]+)(.+?)`, Options{Engine: e})
		require.NoError(t, err)
		assert.Equal(t, "l-321321-l-a321a", p.ReplaceFirst("l321321la321a", "$1-$2-$3-"), e)
	}
}

func TestReplaceNoMatchIsIdentity(t *testing.T) {
	p := MustCompile(`\d`)
	assert.Equal(t, "abc", p.ReplaceFirst("abc", "#"))
	assert.Equal(t, "abc", p.ReplaceAll("abc", "#"))
	assert.Equal(t, "", p.ReplaceAll("", "#"))
}

func TestReplaceAllMatches(t *testing.T) {
	cases := []struct {
		name     string
		pattern  string
		subject  string
		template string
		want     string
	}{
		{"swap", `(\w+)@(\w+)`, "a@b c@d", "$2@$1", "b@a d@c"},
		{"whole match", `\d+`, "x1y22", "<$0>", "x<1>y<22>"},
		{"braced", `(\d)`, "a1", "${1}0", "a10"},
		{"named", `(?P<n>\d)`, "a1b2", "[${n}]", "a[1]b[2]"},
		{"dollar", `\d`, "a1", "$$", "a$"},
		{"escaped dollar", `\d`, "a1", `\$1`, "a$1"},
		{"escaped backslash", `\d`, "a1", `\\`, `a\`},
		{"trailing dollar", `\d`, "a1", "x$", "ax$"},
		{"trailing backslash", `\d`, "a1", `x\`, `ax\`},
		{"not a reference", `\d`, "a1", "$x", "a$x"},
		{"empty braces", `\d`, "a1", "${}", "a${}"},
		{"unterminated braces", `\d`, "a1", "${1", "a${1"},
		{"unknown group", `(\d)`, "a1", "[$7]", "a[]"},
		{"unknown name", `(\d)`, "a1", "[${nope}]", "a[]"},
		{"absent group", `(a)|(b)`, "b", "[$1|$2]", "[|b]"},
		{"digits stop at group count", `(a)(b)`, "ab", "$10", "a0"},
		{"two digit group", `(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)(k)`, "abcdefghijk", "$11$1", "ka"},
		{"adjacent matches", `a`, "aaa", "b", "bbb"},
		{"zero length", `x*`, "ab", "-", "-a-b-"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			assert.Equal(t, tt.want, p.ReplaceAll(tt.subject, tt.template))
		})
	}
}

func TestReplaceFirstFunc(t *testing.T) {
	p := MustCompile(`(\d+)`)

	got := p.ReplaceFirstFunc("a12b34", func(m *Match) (string, bool) {
		g, _ := m.Group(1)
		return "<" + g + ">", true
	})
	assert.Equal(t, "a<12>b34", got)

	got = p.ReplaceFirstFunc("a12b34", func(*Match) (string, bool) {
		return "", false
	})
	assert.Equal(t, "a12b34", got)

	called := false
	got = p.ReplaceFirstFunc("none", func(*Match) (string, bool) {
		called = true
		return "x", true
	})
	assert.Equal(t, "none", got)
	assert.False(t, called)
}

func TestReplaceAllWithReplacer(t *testing.T) {
	p := MustCompile(`\w+`, "word")

	// Only words with an odd length are upper-cased; the others keep their
	// original text.
	got := p.ReplaceAllFunc("one three four five sixty", func(m *Match) (string, bool) {
		w := m.Matched()
		if len(w)%2 == 0 {
			return "", false
		}
		return strings.ToUpper(w), true
	})
	assert.Equal(t, "ONE THREE four five SIXTY", got)
}

func TestReplaceAllFuncAbsentIsIdentity(t *testing.T) {
	subjects := []string{"", "abc", "a1b22c333", "x  y", "ééé"}
	patterns := []string{`\d+`, `.`, `x*`, `(?<=a)b`, `\s`}

	for _, src := range patterns {
		p := MustCompile(src)
		for _, s := range subjects {
			got := p.ReplaceAllFunc(s, func(*Match) (string, bool) { return "ignored", false })
			assert.Equal(t, s, got, "pattern %q", src)
		}
	}
}

func TestReplaceAllFuncSeesEachMatch(t *testing.T) {
	p := MustCompile(`(\d)`, "digit")

	var seen []string
	got := p.ReplaceAllFunc("a1b2c3", func(m *Match) (string, bool) {
		d, _ := m.NamedGroup("digit")
		seen = append(seen, d)
		return "#", d != "2"
	})
	assert.Equal(t, "a#b2c#", got)
	assert.Equal(t, []string{"1", "2", "3"}, seen)
}

func TestExpand(t *testing.T) {
	p := MustCompile(`(\w+)-(\w+)`, "left", "right")
	m, ok := p.FindFirst("see foo-bar")
	require.True(t, ok)
	assert.Equal(t, "bar/foo/foo-bar", m.Expand("${right}/$1/$0"))
}
