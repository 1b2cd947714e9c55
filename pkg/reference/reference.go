// Package reference holds the static reference data of the dashboard: the
// spending categories with their display colors and the payment methods.
//
// The data is loaded once at startup and never modified afterwards. A Set is
// therefore safe for concurrent use.
package reference

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/cases"
)

//go:embed data/reference.json
var defaultData []byte

var (
	ErrMissingReferenceData = errors.New("not found in reference data")
	ErrInvalidReferenceData = errors.New("invalid reference data")
)

// Fallback display values for categories that are not part of the reference set.
const (
	FallbackColor      = "gray"
	FallbackBackground = "bg-gray-100"
	FallbackText       = "text-gray-800"
)

// Category is a spending category with its display colors.
type Category struct {
	Name       string `json:"name" example:"groceries"`
	Color      string `json:"color" example:"green"`          // Notion color name
	Background string `json:"bg" example:"bg-green-100"`      // Background class for badges
	Text       string `json:"text" example:"text-green-800"` // Text class for badges
}

// CSS returns the CSS color value of the category.
func (c Category) CSS() string {
	return CSS(c.Color)
}

// Method is a payment method.
type Method struct {
	Name string `json:"name" example:"credit card"`
	Icon string `json:"icon" example:"/icons/credit-card.svg"`
}

// Set is an immutable set of reference data.
type Set struct {
	categories []Category
	methods    []Method

	categoryIndex map[string]int
	methodIndex   map[string]int
}

type file struct {
	Categories []Category `json:"categories"`
	Methods    []Method   `json:"methods"`
}

// fold returns the case-insensitive key for a name.
//
// A new Caser is used on every call since Casers are not safe for concurrent use.
func fold(name string) string {
	return cases.Fold().String(name)
}

// Default returns the reference data built into the binary.
func Default() (*Set, error) {
	return Parse(defaultData)
}

// Load reads reference data from a JSON file. For an empty path, the
// built-in reference data is used.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data: %w", err)
	}

	return Parse(data)
}

// Parse parses reference data from JSON.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReferenceData, err)
	}

	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrInvalidReferenceData)
	}

	s := &Set{
		categories:    f.Categories,
		methods:       f.Methods,
		categoryIndex: make(map[string]int, len(f.Categories)),
		methodIndex:   make(map[string]int, len(f.Methods)),
	}

	for i, c := range f.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: category %d has no name", ErrInvalidReferenceData, i)
		}

		key := fold(c.Name)
		if _, ok := s.categoryIndex[key]; ok {
			return nil, fmt.Errorf("%w: category %q is defined more than once", ErrInvalidReferenceData, c.Name)
		}
		s.categoryIndex[key] = i
	}

	for i, m := range f.Methods {
		s.methodIndex[fold(m.Name)] = i
	}

	return s, nil
}

// Names returns the names of all categories in their defined order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		names = append(names, c.Name)
	}
	return names
}

// Categories returns a copy of all categories.
func (s *Set) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

// Methods returns a copy of all payment methods.
func (s *Set) Methods() []Method {
	return append([]Method(nil), s.methods...)
}

// Category returns the category with the name, ignoring case.
//
// For unknown names, a category with the fallback display values is
// returned together with an error wrapping ErrMissingReferenceData.
// Callers are expected to display the fallback and log the error.
func (s *Set) Category(name string) (Category, error) {
	if i, ok := s.categoryIndex[fold(name)]; ok {
		return s.categories[i], nil
	}

	return Category{
		Name:       name,
		Color:      FallbackColor,
		Background: FallbackBackground,
		Text:       FallbackText,
	}, fmt.Errorf("category %q: %w", name, ErrMissingReferenceData)
}

// Canonical returns the name of the category as it is spelled in the
// reference data, ignoring case. Unknown names are returned unchanged.
func (s *Set) Canonical(name string) string {
	if i, ok := s.categoryIndex[fold(name)]; ok {
		return s.categories[i].Name
	}
	return name
}

// Icon returns the icon of the payment method, ignoring case.
func (s *Set) Icon(method string) (string, bool) {
	i, ok := s.methodIndex[fold(method)]
	if !ok {
		return "", false
	}
	return s.methods[i].Icon, true
}
