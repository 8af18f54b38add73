package codec

import "strings"

// DefaultSummaryBudget is the character budget used by most callers
const DefaultSummaryBudget = 2000

// Summarize samples record names and string field values for language
// detection. text keeps only ASCII letters and spaces, symbols keeps every
// other character. Each source value is appended with a leading comma while
// its accumulator is under budget characters; the scan ends once both are.
func Summarize(mf *ModFile, budget int) (text, symbols string) {
	var t, s summaryBuilder
	for _, rec := range mf.Records {
		// An empty name still costs symbols its separator.
		if rec.Name != "" {
			t.add(rec.Name, budget, isSummaryText)
		}
		s.add(rec.Name, budget, isSummarySymbol)
		for _, v := range rec.StringFields.All() {
			t.add(v, budget, isSummaryText)
			s.add(v, budget, isSummarySymbol)
		}
		if t.n >= budget && s.n >= budget {
			break
		}
	}
	return t.b.String(), s.b.String()
}

type summaryBuilder struct {
	b strings.Builder
	n int // characters written
}

func (sb *summaryBuilder) add(v string, budget int, keep func(rune) bool) {
	if sb.n >= budget {
		return
	}
	sb.b.WriteByte(',')
	sb.n++
	for _, c := range v {
		if keep(c) {
			sb.b.WriteRune(c)
			sb.n++
		}
	}
}

func isSummaryText(c rune) bool {
	return c == ' ' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSummarySymbol(c rune) bool {
	return !isSummaryText(c)
}
