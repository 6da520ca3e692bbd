package numeric

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	integers := Constraints{}
	decimals := Constraints{AllowDecimals: true}
	nonNegative := Constraints{Min: Bound(0)}
	nonNegativeDecimals := Constraints{Min: Bound(0), AllowDecimals: true}
	negativeMin := Constraints{Min: Bound(-5)}

	tests := []struct {
		name   string
		raw    string
		c      Constraints
		want   string
		wantOK bool
	}{
		{name: "empty clears", raw: "", c: integers, want: "", wantOK: true},
		{name: "letters only clear", raw: "abc", c: integers, want: "", wantOK: true},
		{name: "digits kept", raw: "12", c: integers, want: "12", wantOK: true},
		{name: "letters stripped", raw: "1a2", c: integers, want: "12", wantOK: true},
		{name: "leading zeros kept", raw: "007", c: integers, want: "007", wantOK: true},
		{name: "negative without min", raw: "-3", c: integers, want: "-3", wantOK: true},
		{name: "negative below zero min", raw: "-3", c: negativeMin, want: "-3", wantOK: true},
		{name: "minus dropped when min is zero", raw: "-3", c: nonNegative, want: "3", wantOK: true},
		{name: "minus dropped with decimals", raw: "-3", c: nonNegativeDecimals, want: "3", wantOK: true},
		{name: "trailing minus moves to front", raw: "5-", c: integers, want: "-5", wantOK: true},
		{name: "repeated minus collapses", raw: "--5-", c: integers, want: "-5", wantOK: true},
		{name: "lone minus in progress", raw: "-", c: integers, want: "-", wantOK: true},
		{name: "lone minus dropped when negatives disallowed", raw: "-", c: nonNegative, want: "", wantOK: true},
		{name: "dot stripped for integers", raw: "3.5", c: integers, want: "35", wantOK: true},
		{name: "decimal kept", raw: "3.5", c: decimals, want: "3.5", wantOK: true},
		{name: "second dot absorbed", raw: "3..", c: decimals, want: "3.", wantOK: true},
		{name: "digits after later dots join fraction", raw: "1.2.3", c: decimals, want: "1.23", wantOK: true},
		{name: "double dot then digit", raw: "3..5", c: decimals, want: "3.5", wantOK: true},
		{name: "negative trailing dot in progress", raw: "-3.", c: decimals, want: "-3.", wantOK: true},
		{name: "lone dot rejected", raw: ".", c: decimals, want: "", wantOK: false},
		{name: "minus dot rejected", raw: "-.", c: decimals, want: "", wantOK: false},
		{name: "leading dot fraction parses", raw: ".5", c: decimals, want: ".5", wantOK: true},
		{name: "overflow rejected", raw: strings.Repeat("9", 400), c: integers, want: "", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Filter(tc.raw, tc.c)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"", "-", "5", "-5", "5-", "3.", "3..", "3..5", "1.2.3", "-1.2-3", "abc",
		"12ab34", "0.0.0", "--", "007", ".5", "-0", "1e5", " 42 ", "4,200",
	}
	constraintSets := []Constraints{
		{},
		{AllowDecimals: true},
		{Min: Bound(0)},
		{Min: Bound(0), AllowDecimals: true},
		{Min: Bound(-10), Max: Bound(10), AllowDecimals: true},
	}

	for _, c := range constraintSets {
		for _, raw := range corpus {
			once, ok := Filter(raw, c)
			if !ok {
				continue
			}
			twice, ok := Filter(once, c)
			require.True(t, ok, "filtered text %q must be accepted again", once)
			assert.Equal(t, once, twice, "raw=%q constraints=%+v", raw, c)
		}
	}
}

func TestInProgress(t *testing.T) {
	t.Parallel()

	assert.True(t, InProgress(""))
	assert.True(t, InProgress("-"))
	assert.True(t, InProgress("3."))
	assert.True(t, InProgress("-12."))
	assert.False(t, InProgress("."))
	assert.False(t, InProgress("-."))
	assert.False(t, InProgress("3.5"))
	assert.False(t, InProgress("3"))
}
