package models

// ColorSwatch maps a Color to the hex value the storefront uses for its
// filter badge.
var ColorSwatch = map[Color]string{
	ColorRed:    "#d32f2f",
	ColorBlack:  "#212121",
	ColorBlue:   "#1976d2",
	ColorWhite:  "#fafafa",
	ColorYellow: "#fbc02d",
}

// Swatch returns the hex swatch for a Color.
// Returns a neutral grey for unrecognised colors.
func (c Color) Swatch() string {
	if hex, ok := ColorSwatch[c]; ok {
		return hex
	}
	return "#9e9e9e"
}
