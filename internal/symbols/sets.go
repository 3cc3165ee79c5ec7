package symbols

// builtinSets are the fixed mission-themed glyph tables. Index 0 is the
// empty/background glyph in every set except celestial-set1, which uses the
// new moon for value 0.
var builtinSets = []Set{
	{
		ID:          "tech-set1",
		Name:        "Tech Systems",
		Description: "Ship subsystem icons",
		Glyphs:      [SetSize]string{"⬛", "⚡", "🔋", "💻", "📡", "🛰", "🔌", "💾", "🖥", "📶"},
	},
	{
		ID:          "tech-set2",
		Name:        "Engineering",
		Description: "Maintenance and repair icons",
		Glyphs:      [SetSize]string{"⬛", "🔧", "🔩", "⚙", "🛠", "⛏", "🔨", "🧰", "🪛", "⚒"},
	},
	{
		ID:          "celestial-set1",
		Name:        "Celestial Bodies",
		Description: "Objects sighted from the bridge",
		Glyphs:      [SetSize]string{"🌑", "🌍", "☀", "🌙", "⭐", "☄", "🪐", "🌌", "🌠", "🛸"},
	},
	{
		ID:          "status-main",
		Name:        "Status Lights",
		Description: "Console status indicators",
		Glyphs:      [SetSize]string{"⬛", "🟢", "🟡", "🔴", "🔵", "🟣", "🟠", "⚪", "🟤", "⚫"},
	},
	{
		ID:          "nav-alerts",
		Name:        "Navigation",
		Description: "Heading and maneuver markers",
		Glyphs:      [SetSize]string{"⬛", "⬆", "⬇", "⬅", "➡", "↗", "↘", "↖", "↙", "🔄"},
	},
	{
		ID:          "weather-ops",
		Name:        "Atmospheric Ops",
		Description: "Surface weather conditions",
		Glyphs:      [SetSize]string{"⬛", "☀", "🌧", "⛈", "🌪", "🌈", "❄", "🌫", "💨", "🌊"},
	},
}
