package tabular

// WishColumns names the label/description column pair for one wish slot.
type WishColumns struct {
	Label       string
	Description string
}

// FieldMapping maps roster fields to column headers. Lookups tolerate
// leading/trailing whitespace on both sides, since raw form exports carry
// headers like "What is your wish #2? " with a trailing space.
type FieldMapping struct {
	Section string
	Email   string
	Name    string
	Wishes  []WishColumns
}

// DefaultFieldMapping mirrors the sign-up form columns of the cleaned
// participants file.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		Section: "Enter your Section",
		Email:   "Username",
		Name:    "Enter your Name (FN, MI, LN)",
		Wishes: []WishColumns{
			{Label: "What is your wish #1? (Priority Wish)", Description: "Describe your wish #1! (Priority Wish)"},
			{Label: "What is your wish #2?", Description: "Describe your wish #2!"},
			{Label: "What is your wish #3?", Description: "Describe your wish #3!"},
		},
	}
}
