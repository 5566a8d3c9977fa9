package models

import "strings"

// Size is the closed set of shirt sizes. The string value is the stable
// identity used in catalogs and filters.
type Size string

// Shirt sizes, smallest first.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Color is the closed set of shirt colors.
type Color string

// Shirt colors in storefront display order.
const (
	ColorRed    Color = "red"
	ColorBlack  Color = "black"
	ColorBlue   Color = "blue"
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
)

// Canonical member order. Never handed out directly; see AllSizes and AllColors.
var (
	sizes  = [...]Size{SizeSmall, SizeMedium, SizeLarge}
	colors = [...]Color{ColorRed, ColorBlack, ColorBlue, ColorWhite, ColorYellow}
)

var sizeNames = map[Size]string{
	SizeSmall:  "Small",
	SizeMedium: "Medium",
	SizeLarge:  "Large",
}

var colorNames = map[Color]string{
	ColorRed:    "Red",
	ColorBlack:  "Black",
	ColorBlue:   "Blue",
	ColorWhite:  "White",
	ColorYellow: "Yellow",
}

// AllSizes returns every Size in canonical order. The slice is a fresh
// copy on each call.
func AllSizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes[:])
	return out
}

// AllColors returns every Color in canonical order. The slice is a fresh
// copy on each call.
func AllColors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors[:])
	return out
}

// Name returns the display name, or the raw value for unknown sizes.
func (s Size) Name() string {
	if n, ok := sizeNames[s]; ok {
		return n
	}
	return string(s)
}

// Valid reports whether s is a member of the Size enumeration.
func (s Size) Valid() bool {
	_, ok := sizeNames[s]
	return ok
}

// Ordinal returns the canonical position of s, or -1 if s is unknown.
func (s Size) Ordinal() int {
	for i := range sizes {
		if sizes[i] == s {
			return i
		}
	}
	return -1
}

// Name returns the display name, or the raw value for unknown colors.
func (c Color) Name() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return string(c)
}

// Valid reports whether c is a member of the Color enumeration.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// Ordinal returns the canonical position of c, or -1 if c is unknown.
func (c Color) Ordinal() int {
	for i := range colors {
		if colors[i] == c {
			return i
		}
	}
	return -1
}

// ParseSize resolves an identity ("small") or display name ("Small"),
// ignoring case and surrounding whitespace.
func ParseSize(v string) (Size, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range sizes {
		if string(s) == v {
			return s, true
		}
	}
	return Size(v), false
}

// ParseColor resolves an identity ("red") or display name ("Red"),
// ignoring case and surrounding whitespace.
func ParseColor(v string) (Color, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, c := range colors {
		if string(c) == v {
			return c, true
		}
	}
	return Color(v), false
}

// Shirt is a single catalog item.
type Shirt struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Size  Size   `json:"size" yaml:"size"`
	Color Color  `json:"color" yaml:"color"`
}
