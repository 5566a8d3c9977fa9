package testutil

import (
	"github.com/google/uuid"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

// NewShirt returns a small red Shirt with a fresh ID, suitable for test
// fixtures. Override individual fields with options.
func NewShirt(opts ...func(*models.Shirt)) models.Shirt {
	s := models.Shirt{
		ID:    uuid.New().String(),
		Name:  "Red - Small",
		Size:  models.SizeSmall,
		Color: models.ColorRed,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSize sets the shirt size and refreshes the display label.
func WithSize(size models.Size) func(*models.Shirt) {
	return func(s *models.Shirt) {
		s.Size = size
		s.Name = s.Color.Name() + " - " + size.Name()
	}
}

// WithColor sets the shirt color and refreshes the display label.
func WithColor(color models.Color) func(*models.Shirt) {
	return func(s *models.Shirt) {
		s.Color = color
		s.Name = color.Name() + " - " + s.Size.Name()
	}
}

// WithID sets the shirt ID.
func WithID(id string) func(*models.Shirt) {
	return func(s *models.Shirt) { s.ID = id }
}

// Shirts builds one shirt per (color, size) pair, in order.
func Shirts(pairs ...Pair) []models.Shirt {
	out := make([]models.Shirt, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, NewShirt(WithColor(p.Color), WithSize(p.Size)))
	}
	return out
}

// Pair is a color and size combination for Shirts.
type Pair struct {
	Color models.Color
	Size  models.Size
}
