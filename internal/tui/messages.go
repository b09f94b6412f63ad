package tui

// Message types for Bubble Tea update loop.

// CountMsg replaces the candidate count shown in the badge. Whatever
// produces candidates sends it through tea.Program.Send.
type CountMsg struct{ Count int }
