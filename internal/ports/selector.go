package ports

// Option is one choice offered by a Selector.
type Option struct {
	Value string
	Label string
	Hint  string
}

// Selector is a single-choice list. Hosts drive it with indexes into
// Options(); an index outside the list is refused and Select returns false.
// Selected reports false until a choice has been made.
type Selector interface {
	Options() []Option
	Selected() (Option, bool)
	Select(index int) bool
}
