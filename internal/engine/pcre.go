package engine

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// pcreConstructs are substrings that only PCRE2/Perl syntax gives meaning to,
// based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreConstructs = []string{
	// Lookaround assertions
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
	"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
	// Substring scans and script runs
	"(*scan_substring:", "(*scs:",
	"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Start-of-pattern options
	"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)", "(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)",
	"(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)", "(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
	"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)", "(*BSR_ANYCRLF)", "(*BSR_UNICODE)",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&", "(?P=",
	// Perl extended character classes and callouts
	"(?[", "(?C",
	// Octal code point escape
	`\o{`,
}

// pcreEscapes are the letters that, after a backslash, form an escape RE2
// does not understand.
const pcreEscapes = "ChHvVRXNKeZGgk123456789"

// requiresPCRE reports whether pattern uses syntax that only regexp2 can
// compile or execute.
func requiresPCRE(pattern string) bool {
	for _, c := range pcreConstructs {
		if strings.Contains(pattern, c) {
			return true
		}
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' || i+1 == len(pattern) {
			continue
		}

		// Skip the escaped byte so `\\k` stays a literal backslash and k.
		i++
		if strings.IndexByte(pcreEscapes, pattern[i]) >= 0 {
			return true
		}
	}

	// NOTE(dwisiswant0): Go supports (?P<name>...) and (?<name>...) but not
	// (?'name'...).
	return strings.Contains(pattern, "(?'")
}

// captureOrder lists the capturing groups of a regexp2 pattern in the order
// their opening parentheses appear, as names ("" when unnamed). Entry 0 is
// the whole match.
func captureOrder(pattern string) []string {
	names := []string{""}

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			i = classEnd(pattern, i)
		case '(':
			rest := pattern[i+1:]
			if !strings.HasPrefix(rest, "?") {
				names = append(names, "")
				continue
			}

			rest = rest[1:]
			var name string
			switch {
			case strings.HasPrefix(rest, "#"):
				if end := strings.IndexByte(rest, ')'); end >= 0 {
					i += 2 + end
				}
				continue
			case strings.HasPrefix(rest, "P<"):
				name, _, _ = strings.Cut(rest[2:], ">")
			case strings.HasPrefix(rest, "<=") || strings.HasPrefix(rest, "<!"):
				continue
			case strings.HasPrefix(rest, "<"):
				name, _, _ = strings.Cut(rest[1:], ">")
			case strings.HasPrefix(rest, "'"):
				name, _, _ = strings.Cut(rest[1:], "'")
			default:
				continue
			}

			// Balancing groups (?<open-close>) capture as open; (?<-close>)
			// captures nothing.
			name, _, _ = strings.Cut(name, "-")
			if name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// classEnd returns the index of the ']' closing the character class opened
// at pattern[start], or the last index when the class is unterminated.
func classEnd(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	depth := 1
	for ; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			// Class subtraction: [a-z-[aeiou]].
			if pattern[i-1] == '-' {
				depth++
			}
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return len(pattern) - 1
}

// captureNumbers maps each declared group (see captureOrder) to the number
// regexp2 gave it. regexp2 numbers unnamed groups before named ones, so the
// two orders differ as soon as a named group precedes an unnamed one. When
// the declarations cannot be reconciled with the compiled groups, the
// regexp2 order is returned unchanged.
func captureNumbers(re *regexp2.Regexp, declared []string) []int {
	nums := re.GetGroupNumbers()

	var unnamed []int
	for _, num := range nums[1:] {
		if re.GroupNameFromNumber(num) == strconv.Itoa(num) {
			unnamed = append(unnamed, num)
		}
	}

	order := []int{0}
	seen := map[int]bool{0: true}
	for _, name := range declared[1:] {
		num := -1
		if name == "" {
			if len(unnamed) == 0 {
				return nums
			}
			num, unnamed = unnamed[0], unnamed[1:]
		} else {
			num = re.GroupNumberFromName(name)
		}

		if num < 0 {
			return nums
		}
		if seen[num] {
			continue
		}

		seen[num] = true
		order = append(order, num)
	}

	if len(order) != len(nums) {
		return nums
	}

	return order
}
