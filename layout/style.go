package layout

import "github.com/redexp/pedigree/state"

var ss = Style{
	SpouseGap:     state.SpouseDX,
	GenerationGap: state.ChildDY,
	ChildStep:     state.ChildDX,
	DetachedGap:   state.SpouseDX,
}

type Style struct {
	SpouseGap     float64
	GenerationGap float64
	ChildStep     float64
	DetachedGap   float64
}
