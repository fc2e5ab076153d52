package engine

import (
	"testing"

	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_RejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		dims model.Dimensions
	}{
		{"zero width", model.Dimensions{Width: 0, Height: 720, Depth: 580}},
		{"negative height", model.Dimensions{Width: 800, Height: -1, Depth: 580}},
		{"zero depth", model.Dimensions{Width: 800, Height: 720, Depth: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := baseCabinetSpec()
			spec.Dimensions = tt.dims
			_, _, err := Normalize(spec)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNormalize_RejectsNegativeCounts(t *testing.T) {
	configs := []model.Config{
		{Doors: -1},
		{Drawers: -2},
		{Shelves: -1},
		{Divisions: -1},
		{HangingRods: -1},
	}
	for _, c := range configs {
		spec := baseCabinetSpec()
		spec.Config = c
		_, _, err := Normalize(spec)
		assert.ErrorIs(t, err, ErrValidation, "config %+v", c)
	}
}

func TestNormalize_UnknownModuleType(t *testing.T) {
	spec := baseCabinetSpec()
	spec.ModuleType = "sofa"

	_, _, err := Normalize(spec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownModuleType)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestNormalize_ValidationBeforeDispatch(t *testing.T) {
	spec := baseCabinetSpec()
	spec.ModuleType = "sofa"
	spec.Dimensions.Width = 0

	_, _, err := Normalize(spec)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalize_DoorType(t *testing.T) {
	spec := baseCabinetSpec()
	spec.DoorType = ""
	out, _, err := Normalize(spec)
	require.NoError(t, err)
	assert.Equal(t, model.DoorBoard, out.DoorType)

	spec.DoorType = " Glass "
	out, _, err = Normalize(spec)
	require.NoError(t, err)
	assert.Equal(t, model.DoorGlass, out.DoorType)

	spec.DoorType = "wood"
	_, _, err = Normalize(spec)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalize_OpenModule(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Config = model.Config{Doors: 2, Drawers: 3, Shelves: 2}
	spec.OpenModule = true

	out, _, err := Normalize(spec)
	require.NoError(t, err)
	assert.Equal(t, model.Config{Shelves: 2}, out.Config)
	assert.Equal(t, 2, spec.Config.Doors, "input must not change")
}

func TestNormalize_UnsupportedFeaturesDropped(t *testing.T) {
	spec := model.ModuleSpec{
		ModuleType: model.TypeDrawerChest,
		Dimensions: model.Dimensions{Width: 600, Height: 800, Depth: 450},
		Config:     model.Config{Doors: 2, Drawers: 4, Shelves: 1, Divisions: 1, HangingRods: 1},
	}

	out, rule, err := Normalize(spec)
	require.NoError(t, err)
	assert.Equal(t, model.TypeDrawerChest, rule.Type)
	assert.Equal(t, model.Config{Drawers: 4}, out.Config)
}

func TestNormalize_SelectionCopied(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Selection = model.ComponentSelection{
		model.RoleStructural: " mat-1 ",
		model.RoleHandle:     "   ",
	}

	out, _, err := Normalize(spec)
	require.NoError(t, err)
	assert.Equal(t, model.ComponentSelection{model.RoleStructural: "mat-1"}, out.Selection)

	out.Selection[model.RoleBack] = "mat-8"
	assert.NotContains(t, spec.Selection, model.RoleBack)
}
