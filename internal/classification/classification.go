package classification

import "strings"

// Classification identifies which competitive standing a result table
// pertains to. The numeric values are the codes firstcycling.com uses
// in its query strings.
type Classification int

const (
	None Classification = iota
	GC
	Youth
	Points
	Mountain
	Team
)

var names = map[Classification]string{
	None:     "",
	GC:       "gc",
	Youth:    "youth",
	Points:   "points",
	Mountain: "mountain",
	Team:     "team",
}

// String returns the lowercase name of the classification, or an empty
// string for None.
func (c Classification) String() string {
	return names[c]
}

// Parse maps a classification name (case-insensitive) to its code.
// Returns false for unknown names.
func Parse(name string) (Classification, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n != "" && n == name {
			return c, true
		}
	}
	return None, false
}
