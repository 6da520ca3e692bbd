package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how many of a fixed number of steps are complete.
type Progress struct {
	bar   progress.Model
	total int
}

func NewProgress(total int) Progress {
	theme := GetTheme()
	bar := progress.New(
		progress.WithGradient(string(theme.Colors.Teal.Color(PaletteShade300)), string(theme.Colors.Teal.Color(PaletteShade700))),
		progress.WithoutPercentage(),
		progress.WithWidth(24),
	)
	return Progress{bar: bar, total: total}
}

func (p Progress) Total() int { return p.total }

// Ratio clamps completed/total into [0, 1].
func (p Progress) Ratio(completed int) float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(completed)/float64(p.total)))
}

func (p Progress) View(completed int) string {
	if completed < 0 {
		completed = 0
	}
	if completed > p.total {
		completed = p.total
	}
	label := Style(lipgloss.NewStyle(), Typography(TypographyVariantLabel)).Render(fmt.Sprintf("%d/%d", completed, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(completed)))
}
