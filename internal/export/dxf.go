package export

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/ModuleCut/internal/model"
)

const (
	dxfSpacing    = 50.0 // mm between panel outlines
	dxfTextHeight = 20.0
	layerEdgeBand = "EDGEBAND"
	layerText     = "TEXT"
)

var classColors = map[model.ThicknessClass]color.ColorNumber{
	model.ClassStructural:  color.White,
	model.ClassVisible:     color.Cyan,
	model.ClassBack:        color.Green,
	model.ClassDrawerBoard: color.Blue,
}

// ExportDXF writes one outline per cut-list line, laid out left to right at
// 1 unit = 1 mm. Outlines go on a layer per thickness class; banded edges are
// drawn on the EDGEBAND layer instead. The top edge is L1, the bottom L2, the
// left W1 and the right W2.
func ExportDXF(path string, r Report) error {
	if len(r.Result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	d := dxf.NewDrawing()
	for _, class := range []model.ThicknessClass{model.ClassStructural, model.ClassVisible, model.ClassBack, model.ClassDrawerBoard} {
		if _, err := d.AddLayer(layerName(class), classColors[class], dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer: %w", err)
		}
	}
	if _, err := d.AddLayer(layerEdgeBand, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}
	if _, err := d.AddLayer(layerText, color.Yellow, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}

	x := 0.0
	for _, p := range r.Result.Pieces {
		if err := drawPanel(d, p, x); err != nil {
			return fmt.Errorf("failed to draw %s: %w", p.Name, err)
		}
		x += float64(p.Length) + dxfSpacing
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

func drawPanel(d *drawing.Drawing, p model.Panel, x0 float64) error {
	l, w := float64(p.Length), float64(p.Width)
	edges := []struct {
		banded         bool
		x1, y1, x2, y2 float64
	}{
		{p.Edges.L1, x0, w, x0 + l, w},
		{p.Edges.L2, x0, 0, x0 + l, 0},
		{p.Edges.W1, x0, 0, x0, w},
		{p.Edges.W2, x0 + l, 0, x0 + l, w},
	}
	for _, e := range edges {
		layer := layerName(p.Class)
		if e.banded {
			layer = layerEdgeBand
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}
		if _, err := d.Line(e.x1, e.y1, 0, e.x2, e.y2, 0); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(layerText); err != nil {
		return err
	}
	label := fmt.Sprintf("%s x%d (%dx%d)", p.Name, p.Quantity, p.Length, p.Width)
	_, err := d.Text(label, x0, -2*dxfTextHeight, 0, dxfTextHeight)
	return err
}

func layerName(c model.ThicknessClass) string {
	if c == "" {
		c = model.ClassStructural
	}
	return strings.ToUpper(strings.ReplaceAll(string(c), "-", "_"))
}
