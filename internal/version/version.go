// Package version compares dotted version strings such as the ones printed
// by `python3 --version`. Parsing is intentionally conservative: a value is
// only treated as version-like when it starts with a digit.
package version

import (
	"strconv"
	"strings"
	"unicode"
)

// Normalize extracts the dotted version number from interpreter output.
//
// Examples:
//   - "Python 3.11.4" -> "3.11.4"
//   - "v3.12"         -> "3.12"
//   - "3.11"          -> "3.11"
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		s = s[i+1:]
	}
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}
	return s
}

// parseCore parses any number of numeric dot segments ("3.11.4", "3.11",
// "3"). A segment may carry a trailing non-numeric suffix ("3.13.0rc1");
// the suffix and everything after it are ignored. Returns nil when s is not
// version-like.
func parseCore(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" || !unicode.IsDigit(rune(s[0])) {
		return nil
	}

	parts := strings.Split(s, ".")
	core := make([]int, 0, len(parts))
	for _, p := range parts {
		digits := p
		for i, r := range p {
			if !unicode.IsDigit(r) {
				digits = p[:i]
				break
			}
		}
		if digits == "" {
			break
		}
		v, err := strconv.Atoi(digits)
		if err != nil {
			return nil
		}
		core = append(core, v)
		if digits != p {
			break
		}
	}
	if len(core) == 0 {
		return nil
	}
	return core
}

// IsValid reports whether s parses as a version after normalization.
func IsValid(s string) bool {
	return parseCore(Normalize(s)) != nil
}

// AtLeast reports whether have satisfies the minimum version want. Missing
// segments are treated as 0, so AtLeast("3.11", "3.11.0") holds. Either
// value failing to parse reports false.
func AtLeast(have, want string) bool {
	h := parseCore(Normalize(have))
	w := parseCore(Normalize(want))
	if h == nil || w == nil {
		return false
	}

	n := len(h)
	if len(w) > n {
		n = len(w)
	}
	for i := 0; i < n; i++ {
		hv := 0
		if i < len(h) {
			hv = h[i]
		}
		wv := 0
		if i < len(w) {
			wv = w[i]
		}
		if hv != wv {
			return hv > wv
		}
	}
	return true
}
