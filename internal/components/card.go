package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card.
type CardStyle struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Detail   lipgloss.Style
	Width    int
	Padding  int
	Selected lipgloss.Style
}

// DefaultCardStyle derives card styles from the current theme.
func DefaultCardStyle() CardStyle {
	frame := Style(lipgloss.NewStyle(), Border(BorderVariantRounded), BorderColour(PaletteNeutral), PaddingX(SpacingSizeSmall))
	return CardStyle{
		Frame:    frame,
		Title:    Style(lipgloss.NewStyle(), Typography(TypographyVariantHeading)),
		Body:     Style(lipgloss.NewStyle(), Typography(TypographyVariantBody)),
		Detail:   Style(lipgloss.NewStyle(), Typography(TypographyVariantCaption)),
		Width:    36,
		Padding:  PaddingValue(SpacingSizeSmall),
		Selected: Style(frame, Border(BorderVariantThick), BorderColour(PalettePrimary)),
	}
}

// CardDetail is one labelled line in a card's detail list.
type CardDetail struct {
	Label string
	Value string
}

// CardData represents the content of a card.
type CardData struct {
	Title       string
	Badge       string
	Description string
	Details     []CardDetail
}

// Card is a bordered summary block.
type Card struct {
	data     CardData
	style    CardStyle
	selected bool
}

func NewCard(data CardData) Card {
	return Card{data: data, style: DefaultCardStyle()}
}

// VehicleCard summarises a bookable vehicle.
func VehicleCard(name string, seats int, dailyRate float64) Card {
	return NewCard(CardData{
		Title: name,
		Details: []CardDetail{
			{Label: "Seats", Value: fmt.Sprintf("%d", seats)},
			{Label: "Per day", Value: fmt.Sprintf("%.2f", dailyRate)},
		},
	})
}

func (c Card) WithStyle(style CardStyle) Card {
	c.style = style
	return c
}

func (c Card) WithWidth(width int) Card {
	c.style.Width = width
	return c
}

func (c Card) WithBadge(badge string) Card {
	c.data.Badge = badge
	return c
}

func (c Card) WithDescription(description string) Card {
	c.data.Description = description
	return c
}

func (c Card) WithSelected(selected bool) Card {
	c.selected = selected
	return c
}

func (c Card) Selected() bool { return c.selected }

// View renders the card.
func (c Card) View() string {
	var lines []string

	if header := c.renderHeader(); header != "" {
		lines = append(lines, header)
	}
	if c.data.Description != "" {
		lines = append(lines, c.style.Body.Render(c.wrapText(c.data.Description)))
	}
	if len(c.data.Details) > 0 {
		width := 0
		for _, d := range c.data.Details {
			if n := utf8.RuneCountInString(d.Label); n > width {
				width = n
			}
		}
		for _, d := range c.data.Details {
			label := d.Label + strings.Repeat(" ", width-utf8.RuneCountInString(d.Label))
			lines = append(lines, c.style.Detail.Render(label+"  ")+c.style.Body.Render(d.Value))
		}
	}

	frame := c.style.Frame
	if c.selected {
		frame = c.style.Selected
	}
	if c.style.Width > 0 {
		frame = frame.Width(c.style.Width)
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (c Card) renderHeader() string {
	var parts []string
	if c.data.Title != "" {
		parts = append(parts, c.style.Title.Render(c.data.Title))
	}
	if c.data.Badge != "" {
		badge := Style(lipgloss.NewStyle(), Background(PaletteWarning), PaddingX(SpacingSizeExtraSmall))
		parts = append(parts, badge.Render(c.data.Badge))
	}
	return strings.Join(parts, " ")
}

// wrapText wraps text to the card's content width, breaking words that do
// not fit on a line of their own.
func (c Card) wrapText(text string) string {
	maxWidth := c.style.Width - c.style.Padding*2 - horizontalBorderWidth(c.style.Frame)
	if c.style.Width <= 0 || maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	for _, word := range words {
		runes := []rune(word)
		if len(runes) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			for len(runes) > maxWidth {
				lines = append(lines, string(runes[:maxWidth]))
				runes = runes[maxWidth:]
			}
			current = string(runes)
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n")
}

func horizontalBorderWidth(style lipgloss.Style) int {
	width := style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}
