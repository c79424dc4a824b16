package ts

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// matcher finds registered graphemes within an input string. Graphemes are
// tried longest first, i.e. "tʰ" wins over "t".
type matcher struct {
	re *regexp.Regexp
}

func newMatcher(graphemes []string) *matcher {
	if len(graphemes) == 0 {
		return &matcher{}
	}
	sorted := append([]string(nil), graphemes...)
	sort.Slice(sorted, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(sorted[i]), utf8.RuneCountInString(sorted[j])
		if li != lj {
			return li > lj
		}
		return sorted[i] < sorted[j]
	})
	for i, g := range sorted {
		sorted[i] = regexp.QuoteMeta(g)
	}
	return &matcher{re: regexp.MustCompile(strings.Join(sorted, "|"))}
}

// findAll returns the spans of all non-overlapping matches, left to right.
func (m *matcher) findAll(s string) [][]int {
	if m == nil || m.re == nil {
		return nil
	}
	return m.re.FindAllStringIndex(s, -1)
}
