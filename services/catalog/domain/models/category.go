package models

import "fmt"

// Category is one of the fixed catalog collections.
type Category string

const (
	CategorySabrSeries Category = "Sabr Series"
	CategoryMinimalist Category = "Minimalist"
	CategoryFloral     Category = "Floral"
	CategoryGeometric  Category = "Geometric"
	CategoryAbstract   Category = "Abstract"
)

var categories = []Category{
	CategorySabrSeries,
	CategoryMinimalist,
	CategoryFloral,
	CategoryGeometric,
	CategoryAbstract,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory returns the Category named s (exact match).
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// String returns the display name.
func (c Category) String() string {
	return string(c)
}
