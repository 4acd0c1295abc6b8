package models

// Selection is the result of a drive selection. Count always equals
// len(Matches).
type Selection struct {
	Matches []string `json:"matches"`
	Count   int      `json:"count"`
}

// EmptySelection returns a Selection with a non-nil, empty Matches slice so
// it encodes as [] rather than null.
func EmptySelection() Selection {
	return Selection{Matches: []string{}}
}
