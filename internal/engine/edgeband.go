package engine

import "github.com/piwi3910/ModuleCut/internal/model"

// edges converts an exposure mask into banding flags.
func (e Exposure) edges() model.EdgeBanding {
	return model.EdgeBanding{
		L1: e&ExposeL1 != 0,
		L2: e&ExposeL2 != 0,
		W1: e&ExposeW1 != 0,
		W2: e&ExposeW2 != 0,
	}
}

// assignEdges sets the banding flags of every panel from the exposure its rule
// declared. Geometry plays no part.
func assignEdges(panels []sizedPanel) {
	for i := range panels {
		panels[i].panel.Edges = panels[i].exposure.edges()
	}
}

// EdgeLength returns the banded length in mm of a cut list: flagged length
// edges count the panel length, flagged width edges its width, times quantity.
func EdgeLength(panels []model.Panel) float64 {
	var total float64
	for _, p := range panels {
		total += p.Edges.LinearLength(float64(p.Length), float64(p.Width)) * float64(p.Quantity)
	}
	return total
}
