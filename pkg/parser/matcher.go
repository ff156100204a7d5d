package parser

import "strings"

// DefaultDrivers are the compiler-driver tokens recognized out of the box.
// Real build logs vary in toolchain prefix naming, so the set is
// configuration, not hard-coded matcher logic.
var DefaultDrivers = []string{
	"arm-linux-g++",
	"arm-linux-gcc",
	"arm-linux-gnueabihf-g++",
	"arm-linux-gnueabihf-gcc",
}

// DefaultCacheWrapper is the build-acceleration wrapper token that may
// prefix any recognized driver.
const DefaultCacheWrapper = "ccache"

// Matcher recognizes compiler-driver invocations in single-translation-unit
// compile mode and isolates the argument string that follows.
type Matcher struct {
	drivers []string
	wrapper string
}

// NewMatcher builds a matcher for the given driver tokens, each optionally
// prefixed by the cache wrapper token.
func NewMatcher(drivers []string, wrapper string) *Matcher {
	return &Matcher{drivers: drivers, wrapper: wrapper}
}

// Match reports whether the sanitized line is a recognized compile
// invocation: [wrapper] <driver> -c <args...>. On match it returns the raw
// argument string after -c. A miss is not an error; most log lines are not
// compile invocations.
func (m *Matcher) Match(line string) (string, bool) {
	rest := line
	if m.wrapper != "" {
		if r, ok := cutToken(rest, m.wrapper); ok {
			rest = r
		}
	}

	matched := false
	for _, driver := range m.drivers {
		if r, ok := cutToken(rest, driver); ok {
			rest = r
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	args, ok := cutToken(rest, "-c")
	if !ok || args == "" {
		return "", false
	}
	return args, true
}

// cutToken removes tok from the front of s when it is a whole
// whitespace-delimited token, returning the remainder with leading
// whitespace trimmed.
func cutToken(s, tok string) (string, bool) {
	rest, found := strings.CutPrefix(s, tok)
	if !found || rest == "" {
		return "", false
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimLeft(rest, " \t"), true
}
