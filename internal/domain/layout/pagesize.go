package layout

import "math"

// PageSizer acota el alto estimado al rango permitido por el perfil.
type PageSizer struct {
	Min float64
	Max float64
}

// NewPageSizer toma los límites del perfil.
func NewPageSizer(p Profile) PageSizer {
	return PageSizer{Min: p.MinHeight, Max: math.Max(p.MaxHeight, p.MinHeight)}
}

// Clamp devuelve max(Min, min(Max, h)). NaN se trata como Min.
func (s PageSizer) Clamp(h float64) float64 {
	if math.IsNaN(h) {
		return s.Min
	}
	return math.Max(s.Min, math.Min(s.Max, h))
}
