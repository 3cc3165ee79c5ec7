package display

// Color is a hex RGB color string ("#rrggbb").
type Color string

// cellColors pairs a background with a readable text color.
type cellColors struct {
	Background Color
	Text       Color
}

// categoryPalette is the fixed value→color table shared with the ARC
// ecosystem; index i colors cell value i. Text colors are chosen for
// contrast against the background.
var categoryPalette = [10]cellColors{
	{Background: "#000000", Text: "#ffffff"}, // 0 black
	{Background: "#0074d9", Text: "#ffffff"}, // 1 blue
	{Background: "#ff4136", Text: "#ffffff"}, // 2 red
	{Background: "#2ecc40", Text: "#000000"}, // 3 green
	{Background: "#ffdc00", Text: "#000000"}, // 4 yellow
	{Background: "#aaaaaa", Text: "#000000"}, // 5 grey
	{Background: "#f012be", Text: "#ffffff"}, // 6 fuchsia
	{Background: "#ff851b", Text: "#000000"}, // 7 orange
	{Background: "#7fdbff", Text: "#000000"}, // 8 teal
	{Background: "#870c25", Text: "#ffffff"}, // 9 maroon
}

// InteractionState keys the symbolic-mode palette.
type InteractionState string

const (
	StateDefault  InteractionState = "default"
	StateSelected InteractionState = "selected"
	StateHovered  InteractionState = "hovered"
)

// interactionPalette colors symbolic-mode cells by interaction state rather
// than by value.
var interactionPalette = map[InteractionState]cellColors{
	StateDefault:  {Background: "#1a1a2e", Text: "#e0e0e0"},
	StateSelected: {Background: "#00b4d8", Text: "#03045e"},
	StateHovered:  {Background: "#16213e", Text: "#ffffff"},
}

// CategoryBackground returns the category-palette background for a value.
// Used by terminal rendering, which colors whole cells.
func CategoryBackground(value int) (Color, error) {
	if value < 0 || value > len(categoryPalette)-1 {
		return "", ErrCellValue
	}
	return categoryPalette[value].Background, nil
}
