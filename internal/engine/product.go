package engine

import (
	"fmt"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// ProductDraft is the starting point of a catalog product built from a
// calculated module. Materials are copied verbatim from the result.
type ProductDraft struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	ModuleType  model.ModuleType      `json:"module_type"`
	Materials   []model.MaterialUsage `json:"materials"`
}

// DraftProduct turns a calculation result into a product draft named
// "<label> WxH". The label defaults to the archetype label.
func DraftProduct(result model.CalculationResult) (ProductDraft, error) {
	rule, err := Lookup(result.Spec.ModuleType)
	if err != nil {
		return ProductDraft{}, err
	}

	label := result.Spec.Label
	if label == "" {
		label = rule.Label
	}
	d := result.Spec.Dimensions
	c := result.Spec.Config

	desc := fmt.Sprintf("%s %s mm", rule.Label, d)
	if c.Doors > 0 {
		desc += fmt.Sprintf(", %d doors", c.Doors)
		if result.Spec.DoorType == model.DoorGlass {
			desc += " (glass)"
		}
	}
	if c.Drawers > 0 {
		desc += fmt.Sprintf(", %d drawers", c.Drawers)
	}
	if c.Shelves > 0 {
		desc += fmt.Sprintf(", %d shelves", c.Shelves)
	}
	if result.Spec.OpenModule {
		desc += ", open"
	}

	materials := make([]model.MaterialUsage, len(result.Materials))
	copy(materials, result.Materials)

	return ProductDraft{
		Name:        fmt.Sprintf("%s %dx%d", label, d.Width, d.Height),
		Description: desc,
		Category:    rule.Category,
		ModuleType:  rule.Type,
		Materials:   materials,
	}, nil
}
