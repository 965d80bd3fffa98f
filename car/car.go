// Package car lists the selectable car models and draws their sprites.
package car

import (
	"image"
	"image/color"
)

// Model is one selectable car. Its index in Models is the vehicle
// prototype variant.
type Model struct {
	ID    string
	Name  string
	Color color.RGBA
}

var models = []Model{
	{ID: "default", Name: "Roadster", Color: color.RGBA{220, 20, 20, 255}},
	{ID: "coupe", Name: "Coupe", Color: color.RGBA{30, 90, 220, 255}},
	{ID: "taxi", Name: "Taxi", Color: color.RGBA{240, 200, 30, 255}},
	{ID: "hatch", Name: "Hatchback", Color: color.RGBA{40, 170, 80, 255}},
}

// Models returns the catalog in selection order.
func Models() []Model {
	return append([]Model(nil), models...)
}

// Get returns the model at index i.
func Get(i int) (Model, bool) {
	if i < 0 || i >= len(models) {
		return Model{}, false
	}
	return models[i], true
}

// Index finds a model by id.
func Index(id string) (int, bool) {
	for i, m := range models {
		if m.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Sprites draws every model, one image per variant.
func Sprites() []image.Image {
	out := make([]image.Image, len(models))
	for i, m := range models {
		out[i] = Sprite(m.Color)
	}
	return out
}
