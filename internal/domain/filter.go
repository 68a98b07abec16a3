package domain

// Selector narrows a task listing to a predefined slice of the collection.
// Besides the fixed selectors, any known category name is a valid selector.
type Selector string

const (
	SelectorAll       Selector = "all"
	SelectorToday     Selector = "today"
	SelectorWeek      Selector = "week"
	SelectorOverdue   Selector = "overdue"
	SelectorCompleted Selector = "completed"
	SelectorRecurring Selector = "recurring"
)

// ParseSelector maps a string to a Selector. Category names are accepted as
// selectors. The second result reports whether the input named a known
// selector; unknown input falls back to "all".
func ParseSelector(s string) (Selector, bool) {
	switch Selector(s) {
	case SelectorAll, SelectorToday, SelectorWeek, SelectorOverdue, SelectorCompleted, SelectorRecurring:
		return Selector(s), true
	}
	for _, c := range Categories() {
		if s == string(c) {
			return Selector(s), true
		}
	}
	return SelectorAll, false
}

// Category returns the category this selector targets, if any.
func (s Selector) Category() (Category, bool) {
	for _, c := range Categories() {
		if string(s) == string(c) {
			return c, true
		}
	}
	return "", false
}
