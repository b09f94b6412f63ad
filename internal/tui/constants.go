package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	// contentMaxWidth caps the control bar width on wide terminals.
	contentMaxWidth = 100
	// horizontalPadding is the left+right margin around the content column.
	horizontalPadding = 2

	appTitle = "Candidate Review"
)
