package verify

import (
	"strings"
	"unicode"

	"golang.org/x/net/http/httpguts"
)

// ValidHeaderValue reports whether v is acceptable as an HTTP header field
// value. httpguts tolerates edge whitespace (it is legal on the wire after
// folding), but strict clients reject User-Agent values with leading or
// trailing whitespace outright, so that is checked on top.
func ValidHeaderValue(v string) bool {
	if !httpguts.ValidHeaderFieldValue(v) {
		return false
	}
	return strings.TrimFunc(v, unicode.IsSpace) == v
}
