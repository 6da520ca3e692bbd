package numeric

import (
	"strconv"
	"strings"
)

// Filter reduces a raw edit to the characters a number can hold and reports
// whether the result may replace the displayed text.
//
// The result carries a leading minus iff raw contained one and negatives are
// allowed. With decimals only the first dot survives; digits after later dots
// join the existing fraction. Empty text, a lone "-" and "<digits>." are
// accepted as in-progress states; any other result must parse to a finite
// number.
func Filter(raw string, c Constraints) (string, bool) {
	if raw == "" {
		return "", true
	}

	var b strings.Builder
	b.Grow(len(raw) + 1)

	negative := false
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-':
			negative = true
		case r == '.' && c.AllowDecimals && !seenDot:
			b.WriteByte('.')
			seenDot = true
		}
	}

	text := b.String()
	if negative && c.NegativeAllowed() {
		text = "-" + text
	}

	if InProgress(text) {
		return text, true
	}
	if _, ok := parseFinite(text); !ok {
		return "", false
	}
	return text, true
}

// InProgress reports whether text is a transient state that must not commit:
// empty, a lone "-", or digits followed by a trailing dot.
func InProgress(text string) bool {
	if text == "" || text == "-" {
		return true
	}
	if !strings.HasSuffix(text, ".") {
		return false
	}
	body := strings.TrimPrefix(strings.TrimSuffix(text, "."), "-")
	return body != "" && allDigits(body)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseFinite(text string) (float64, bool) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || !isFinite(n) {
		return 0, false
	}
	return n, true
}
