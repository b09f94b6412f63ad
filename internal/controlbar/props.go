package controlbar

import (
	"errors"
	"fmt"
)

// ViewMode is the layout the caller renders candidates in.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

// ErrUnknownViewMode is returned by ParseViewMode for anything but list or grid.
var ErrUnknownViewMode = errors.New("unknown view mode")

// ParseViewMode converts user input into a ViewMode. The control itself
// never validates its props; this is for callers reading flags or files.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewList, ViewGrid:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
	}
}

// other returns the mode whose button is not active.
func (v ViewMode) other() ViewMode {
	if v == ViewGrid {
		return ViewList
	}
	return ViewGrid
}

// Props is everything the caller owns. The control reads it and reports
// requested changes through the callbacks; it never writes to it.
type Props struct {
	SortBy           string
	OnSortChange     func(value string)
	ViewMode         ViewMode
	OnViewModeChange func(mode ViewMode)
	CandidateCount   int
}
