package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/display"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// renderGrid draws a grid using the resolver's colors, one styled cell per
// value.
func renderGrid(r *display.Resolver, g domain.Grid, mode domain.DisplayMode, setID string) (string, error) {
	cells, err := r.ResolveGrid(g, mode, setID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, row := range cells {
		for _, cell := range row {
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(string(cell.Background))).
				Foreground(lipgloss.Color(string(cell.Text))).
				Width(3).
				Align(lipgloss.Center)
			b.WriteString(style.Render(cell.Glyph))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// printPair renders an input/output example side by side, input first.
func printPair(r *display.Resolver, pair domain.GridPair, mode domain.DisplayMode, setID string) error {
	in, err := renderGrid(r, pair.Input, mode, setID)
	if err != nil {
		return err
	}
	out, err := renderGrid(r, pair.Output, mode, setID)
	if err != nil {
		return err
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, in, "  →  ", out))
	return nil
}
