package placement

import "combo/internal/domain"

// Geometry is the measurement input of a placement decision, in rows (or
// pixels, the unit only has to be consistent)
type Geometry struct {
	ScrollTop      int // viewport scroll offset
	ViewportHeight int
	Top            int // absolute top offset of the widget
	LabelHeight    int
	PanelHeight    int // height of the expanded option panel
}

// State holds the last decided placement
type State struct {
	Placement domain.Placement
}
