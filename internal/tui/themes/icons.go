package themes

// Glyphs for navigation icon names. A name missing here renders as IconFallback.
var (
	unicodeIcons = map[string]string{
		"home":     "⌂",
		"document": "▤",
		"globe":    "◍",
		"play":     "▶",
		"list":     "☰",
		"grid":     "▦",
		"chart":    "▥",
		"tabs":     "▭",
		"map":      "◈",
		"camera":   "◉",
		"image":    "▣",
		"settings": "⚙",
		"info":     "ℹ",
	}

	asciiIcons = map[string]string{
		"home":     "H",
		"document": "D",
		"globe":    "W",
		"play":     ">",
		"list":     "L",
		"grid":     "#",
		"chart":    "C",
		"tabs":     "T",
		"map":      "M",
		"camera":   "O",
		"image":    "I",
		"settings": "S",
		"info":     "i",
	}
)

const (
	IconFallback      = "•"
	IconFallbackASCII = "*"

	IconMenu         = "≡"
	IconChevronRight = "›"
)

// Icon returns the glyph for name. ASCII glyphs are used when unicode is false.
func Icon(name string, unicode bool) string {
	if unicode {
		if g, ok := unicodeIcons[name]; ok {
			return g
		}
		return IconFallback
	}
	if g, ok := asciiIcons[name]; ok {
		return g
	}
	return IconFallbackASCII
}

// Menu returns the pane toggle glyph.
func Menu(unicode bool) string {
	if unicode {
		return IconMenu
	}
	return "="
}

// Cursor returns the pane cursor glyph.
func Cursor(unicode bool) string {
	if unicode {
		return IconChevronRight
	}
	return ">"
}
