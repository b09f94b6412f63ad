// Package catalog holds the compiled-in sort options offered by the
// candidate control bar, grouped the way they are displayed.
package catalog

import (
	"errors"
	"fmt"

	"github.com/ensigniasec/candidate-controls/internal/validate"
)

// Sentinel errors reported by Validate.
var (
	ErrDuplicateValue = errors.New("duplicate sort value")
	ErrEmptyGroup     = errors.New("empty sort group")
)

// SortOption is a single selectable sort order.
type SortOption struct {
	Value       string `json:"value" yaml:"value" validate:"required,sortkey"`
	Label       string `json:"label" yaml:"label" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
}

// Group is a labeled run of options rendered under one header.
type Group struct {
	Label   string       `json:"label" yaml:"label" validate:"required"`
	Options []SortOption `json:"options" yaml:"options" validate:"dive"`
}

// DefaultSort is the option a fresh host starts with.
const DefaultSort = "matchScore"

//nolint:gochecknoglobals // Compiled-in constant data; only copies leave the package.
var groups = []Group{
	{
		Label: "Relevance",
		Options: []SortOption{
			{Value: "matchScore", Label: "Match Score", Description: "Most qualified candidates based on comprehensive AI assessment"},
		},
	},
	{
		Label: "Time-Based",
		Options: []SortOption{
			{Value: "appliedDesc", Label: "Most Recent", Description: "Newest applications first"},
			{Value: "appliedAsc", Label: "Oldest First", Description: "Applications waiting the longest first"},
			{Value: "updatedDesc", Label: "Recently Active", Description: "Candidates with the latest profile activity"},
			{Value: "availabilityAsc", Label: "Soonest Available", Description: "Candidates who can start earliest"},
		},
	},
	{
		Label: "Experience & Background",
		Options: []SortOption{
			{Value: "experienceDesc", Label: "Most Experienced", Description: "Most years of relevant experience first"},
			{Value: "experienceAsc", Label: "Early Career", Description: "Fewest years of relevant experience first"},
			{Value: "educationDesc", Label: "Education Level", Description: "Highest completed degree first"},
		},
	},
	{
		Label: "Practical & Engagement",
		Options: []SortOption{
			{Value: "nameAsc", Label: "Name (A-Z)", Description: "Alphabetical by candidate name"},
			{Value: "salaryAsc", Label: "Salary Expectation", Description: "Lowest expected compensation first"},
			{Value: "locationAsc", Label: "Location", Description: "Alphabetical by candidate location"},
			{Value: "engagementDesc", Label: "Most Engaged", Description: "Candidates who respond to outreach most often"},
		},
	},
}

// Groups returns the display groups in order. The result is a deep copy.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Label: g.Label, Options: append([]SortOption(nil), g.Options...)}
	}
	return out
}

// Options returns every option flattened in catalog order.
func Options() []SortOption {
	out := make([]SortOption, 0, Len())
	for _, g := range groups {
		out = append(out, g.Options...)
	}
	return out
}

// Len reports the number of options across all groups.
func Len() int {
	n := 0
	for _, g := range groups {
		n += len(g.Options)
	}
	return n
}

// Lookup finds the option with the given value.
func Lookup(value string) (SortOption, bool) {
	for _, g := range groups {
		for _, opt := range g.Options {
			if opt.Value == value {
				return opt, true
			}
		}
	}
	return SortOption{}, false
}

// IndexOf returns the flattened catalog index of value, or -1.
func IndexOf(value string) int {
	i := 0
	for _, g := range groups {
		for _, opt := range g.Options {
			if opt.Value == value {
				return i
			}
			i++
		}
	}
	return -1
}

// Validate checks the structure of the compiled-in catalog.
func Validate() error {
	seen := make(map[string]string, Len())
	for _, g := range groups {
		if len(g.Options) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyGroup, g.Label)
		}
		if err := validate.Struct(g); err != nil {
			return fmt.Errorf("group %q: %w", g.Label, err)
		}
		for _, opt := range g.Options {
			if prev, ok := seen[opt.Value]; ok {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateValue, opt.Value, prev, g.Label)
			}
			seen[opt.Value] = g.Label
		}
	}
	return nil
}
