package domain

import (
	"math"
	"slices"
)

// Auto-layout grid: two columns of 0.35×0.35 cells, rows from y=0.15 with a
// 0.05 gap.
const (
	gridCols      = 2
	gridCell      = 0.35
	gridLeftX     = 0.15
	gridRightX    = 0.55
	gridRowStartY = 0.15
	gridRowGap    = 0.05
	gridRowPitch  = gridCell + gridRowGap
	gridTolerance = 0.01
)

// Geometry is the rectangle part of a Place.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlaceInput struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlacePatch struct {
	Label  *string  `json:"label,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

func near(a, b float64) bool { return math.Abs(a-b) < gridTolerance }

// onGrid reports whether p has the canonical cell size and sits in one of
// the two grid columns. Hand-placed zones such as Checkout do not.
func onGrid(p Place) bool {
	return near(p.Width, gridCell) && near(p.Height, gridCell) &&
		(near(p.X, gridLeftX) || near(p.X, gridRightX))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NextAutoPlace returns the next free cell of the 2-column grid, counting
// only places that already follow the grid. Once the rows run past the
// bottom of the map every further cell is clamped onto the last row and
// overlaps the previous ones.
func NextAutoPlace(places []Place) Geometry {
	index := 0
	for _, p := range places {
		if onGrid(p) {
			index++
		}
	}
	col := index % gridCols
	row := index / gridCols

	x := gridLeftX
	if col == 1 {
		x = gridRightX
	}
	y := gridRowStartY + float64(row)*gridRowPitch

	return Geometry{
		X:      clamp(x, 0, 1-gridCell),
		Y:      clamp(y, 0, 1-gridCell),
		Width:  gridCell,
		Height: gridCell,
	}
}

// AddPlace appends a place with the given id. Geometry is not validated.
func AddPlace(places []Place, id string, in PlaceInput) []Place {
	out := make([]Place, 0, len(places)+1)
	out = append(out, places...)
	return append(out, Place{
		ID: id, Label: in.Label,
		X: in.X, Y: in.Y, Width: in.Width, Height: in.Height,
	})
}

// AddPlaceAuto appends a place positioned by NextAutoPlace.
func AddPlaceAuto(places []Place, id, label string) []Place {
	g := NextAutoPlace(places)
	return AddPlace(places, id, PlaceInput{Label: label, X: g.X, Y: g.Y, Width: g.Width, Height: g.Height})
}

func UpdatePlace(places []Place, id string, p PlacePatch) []Place {
	out := slices.Clone(places)
	if out == nil {
		out = []Place{}
	}
	for i := range out {
		if out[i].ID != id {
			continue
		}
		pl := &out[i]
		if p.Label != nil {
			pl.Label = *p.Label
		}
		if p.X != nil {
			pl.X = *p.X
		}
		if p.Y != nil {
			pl.Y = *p.Y
		}
		if p.Width != nil {
			pl.Width = *p.Width
		}
		if p.Height != nil {
			pl.Height = *p.Height
		}
	}
	return out
}

func DeletePlace(places []Place, id string) []Place {
	out := make([]Place, 0, len(places))
	for _, p := range places {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func FindPlace(places []Place, id string) (Place, bool) {
	for _, p := range places {
		if p.ID == id {
			return p, true
		}
	}
	return Place{}, false
}

func FindPlaceByLabel(places []Place, label string) (Place, bool) {
	for _, p := range places {
		if p.Label == label {
			return p, true
		}
	}
	return Place{}, false
}

// Center is the midpoint of the place rectangle.
func Center(p Place) (x, y float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}
