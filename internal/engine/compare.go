package engine

import (
	"github.com/piwi3910/ModuleCut/internal/model"
)

// ComparisonVariant defines a named alternative of a module spec.
type ComparisonVariant struct {
	Name string
	Spec model.ModuleSpec
}

// ComparisonResult holds the calculation result and computed statistics
// for a single variant. Err is set when the variant could not be calculated.
type ComparisonResult struct {
	Variant    ComparisonVariant
	Result     model.CalculationResult
	Err        error
	PieceCount int
	BoardArea  float64 // m²
	EdgeLength float64 // m
	Materials  int
}

// CompareVariants calculates every variant and returns the results in
// variant order. A failing variant does not stop the others.
func CompareVariants(calc *Calculator, variants []ComparisonVariant, extras []model.ExtraLine) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(variants))

	for _, variant := range variants {
		result, err := calc.Calculate(variant.Spec, extras)
		if err != nil {
			results = append(results, ComparisonResult{Variant: variant, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Variant:    variant,
			Result:     result,
			PieceCount: result.PieceCount(),
			BoardArea:  round4(result.BoardArea()),
			EdgeLength: round4(EdgeLength(result.Pieces) / 1000),
			Materials:  len(result.Materials),
		})
	}

	return results
}

// BuildDefaultVariants generates what-if alternatives of a spec: as given,
// without fronts, and with glass doors.
func BuildDefaultVariants(spec model.ModuleSpec) []ComparisonVariant {
	variants := []ComparisonVariant{
		{
			Name: "As Specified",
			Spec: spec,
		},
	}

	// Variant: open module
	if !spec.OpenModule && (spec.Config.Doors > 0 || spec.Config.Drawers > 0) {
		open := spec
		open.OpenModule = true
		variants = append(variants, ComparisonVariant{
			Name: "Open Module",
			Spec: open,
		})
	}

	// Variant: glass doors
	if !spec.OpenModule && spec.Config.Doors > 0 && spec.DoorType != model.DoorGlass {
		glass := spec
		glass.DoorType = model.DoorGlass
		variants = append(variants, ComparisonVariant{
			Name: "Glass Doors",
			Spec: glass,
		})
	}

	// Variant: board doors
	if spec.Config.Doors > 0 && spec.DoorType == model.DoorGlass {
		board := spec
		board.DoorType = model.DoorBoard
		variants = append(variants, ComparisonVariant{
			Name: "Board Doors",
			Spec: board,
		})
	}

	return variants
}
