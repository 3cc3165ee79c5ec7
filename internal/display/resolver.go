// Package display maps a cell value plus a display mode to renderable
// content: a glyph and a background/text color pair. Resolution is a pure
// function of its inputs and the static palettes; it never suspends and has
// no side effects.
package display

import (
	"errors"
	"strconv"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/symbols"
)

// ErrCellValue indicates a value outside [0,9]; the category palette and
// symbol sets are defined only over that domain.
var ErrCellValue = errors.New("display: cell value must be in [0,9]")

// Appearance is the renderable content for one cell.
type Appearance struct {
	Glyph      string `json:"glyph"`
	Background Color  `json:"background"`
	Text       Color  `json:"text"`
}

// Resolver resolves cell appearances against a symbol set registry.
type Resolver struct {
	sets *symbols.Registry
}

// NewResolver builds a Resolver over the given registry.
func NewResolver(sets *symbols.Registry) *Resolver {
	return &Resolver{sets: sets}
}

// Resolve returns the appearance for value under mode and symbol set, using
// the default interaction state. Unknown set ids fall back to the default
// set (see symbols.Registry.Get); out-of-range values fail with ErrCellValue.
func (r *Resolver) Resolve(value int, mode domain.DisplayMode, setID string) (Appearance, error) {
	return r.ResolveState(value, mode, setID, StateDefault)
}

// ResolveState is Resolve with an explicit interaction state. The state only
// affects symbolic-mode colors; numeric and hybrid colors always come from
// the category palette.
func (r *Resolver) ResolveState(value int, mode domain.DisplayMode, setID string, state InteractionState) (Appearance, error) {
	if value < 0 || value > domain.MaxCellValue {
		return Appearance{}, ErrCellValue
	}
	cat := categoryPalette[value]
	switch mode {
	case domain.ModeSymbolic:
		st := interactionPalette[state]
		return Appearance{
			Glyph:      r.sets.Get(setID).Glyphs[value],
			Background: st.Background,
			Text:       st.Text,
		}, nil
	case domain.ModeHybrid:
		// Glyph from the symbolic mode, colors from the numeric mode.
		return Appearance{
			Glyph:      r.sets.Get(setID).Glyphs[value],
			Background: cat.Background,
			Text:       cat.Text,
		}, nil
	default:
		return Appearance{
			Glyph:      strconv.Itoa(value),
			Background: cat.Background,
			Text:       cat.Text,
		}, nil
	}
}

// ResolveGrid resolves every cell of a grid under one mode and set.
func (r *Resolver) ResolveGrid(g domain.Grid, mode domain.DisplayMode, setID string) ([][]Appearance, error) {
	out := make([][]Appearance, g.Height())
	for row := 0; row < g.Height(); row++ {
		out[row] = make([]Appearance, g.Width())
		for col := 0; col < g.Width(); col++ {
			v, err := g.At(row, col)
			if err != nil {
				return nil, err
			}
			a, err := r.Resolve(v, mode, setID)
			if err != nil {
				return nil, err
			}
			out[row][col] = a
		}
	}
	return out, nil
}
