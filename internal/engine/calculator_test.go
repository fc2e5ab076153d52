package engine

import (
	"fmt"
	"testing"

	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSelection() model.ComponentSelection {
	return model.GetSelectionProfile(model.DefaultProfileName).Selection
}

func baseCabinetSpec() model.ModuleSpec {
	return model.ModuleSpec{
		ModuleType: model.TypeBaseCabinet,
		Dimensions: model.Dimensions{Width: 800, Height: 720, Depth: 580},
		Config:     model.Config{Doors: 2, Shelves: 1},
		Selection:  fullSelection(),
	}
}

func TestCalculate_BaseCabinet(t *testing.T) {
	result, err := Calculate(baseCabinetSpec(), nil)
	require.NoError(t, err)

	names := make([]string, len(result.Pieces))
	for i, p := range result.Pieces {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Side", "Bottom", "Back", "Shelf", "Door"}, names)

	side := result.FindPiece("Side")
	require.NotNil(t, side)
	assert.Equal(t, 2, side.Quantity)
	assert.Equal(t, 720, side.Length)
	assert.Equal(t, 580, side.Width)
	assert.Equal(t, model.EdgeBanding{L1: true}, side.Edges)

	bottom := result.FindPiece("Bottom")
	require.NotNil(t, bottom)
	assert.Equal(t, 764, bottom.Length)
	assert.Equal(t, 580, bottom.Width)

	back := result.FindPiece("Back")
	require.NotNil(t, back)
	assert.Equal(t, 700, back.Length)
	assert.Equal(t, 780, back.Width)
	assert.Equal(t, model.ClassBack, back.Class)
	assert.Equal(t, "mat-8", back.MaterialID)
	assert.False(t, back.Edges.HasAny())

	door := result.FindPiece("Door")
	require.NotNil(t, door)
	assert.Equal(t, 2, door.Quantity)
	assert.Equal(t, 720, door.Length)
	assert.Equal(t, 397, door.Width)
	assert.Equal(t, model.EdgeBanding{L1: true, L2: true, W1: true, W2: true}, door.Edges)

	shelf := result.FindPiece("Shelf")
	require.NotNil(t, shelf)
	assert.Equal(t, 764, shelf.Length)
	assert.Equal(t, 557, shelf.Width)

	hinge := result.FindMaterial("mat-17")
	require.NotNil(t, hinge, "hinge row should exist")
	assert.Equal(t, 4.0, hinge.Quantity)
	assert.Equal(t, model.UnitPiece, hinge.Unit)
}

func TestCalculate_BaseCabinetMaterials(t *testing.T) {
	result, err := Calculate(baseCabinetSpec(), nil)
	require.NoError(t, err)

	want := []model.MaterialUsage{
		{MaterialID: "mat-1", Quantity: 2.2755, Unit: model.UnitSquareMeter},
		{MaterialID: "mat-8", Quantity: 0.546, Unit: model.UnitSquareMeter},
		{MaterialID: "mat-12", Quantity: 7.436, Unit: model.UnitLinearMeter},
		{MaterialID: "mat-17", Quantity: 4, Unit: model.UnitPiece},
		{MaterialID: "mat-19", Quantity: 2, Unit: model.UnitPiece},
		{MaterialID: "mat-21", Quantity: 4, Unit: model.UnitPiece},
		{MaterialID: "mat-22", Quantity: 28, Unit: model.UnitPiece},
		{MaterialID: "mat-23", Quantity: 42, Unit: model.UnitPiece},
		{MaterialID: "mat-26", Quantity: 0.1411, Unit: model.UnitPiece},
		{MaterialID: "mat-66", Quantity: 3.3859, Unit: model.UnitPiece},
	}
	assert.Equal(t, want, result.Materials)
}

func TestCalculate_UnitsFromCatalog(t *testing.T) {
	catalog := model.DefaultCatalog()
	calc := New(model.DefaultSettings(), &catalog)

	result, err := calc.Calculate(baseCabinetSpec(), nil)
	require.NoError(t, err)

	for _, row := range result.Materials {
		unit, ok := catalog.Unit(row.MaterialID)
		require.True(t, ok, "material %s should be in the default catalog", row.MaterialID)
		assert.Equal(t, unit, row.Unit, "unit of %s", row.MaterialID)
	}
}

func TestCalculate_ExtrasMergeIntoExistingRow(t *testing.T) {
	result, err := Calculate(baseCabinetSpec(), []model.ExtraLine{{MaterialID: "mat-19", Quantity: 3}})
	require.NoError(t, err)

	count := 0
	for _, m := range result.Materials {
		if m.MaterialID == "mat-19" {
			count++
		}
	}
	assert.Equal(t, 1, count, "extra line must not duplicate a row")
	assert.Equal(t, 5.0, result.FindMaterial("mat-19").Quantity)
}

func TestCalculate_ExtrasCreateNewRow(t *testing.T) {
	plain, err := Calculate(baseCabinetSpec(), nil)
	require.NoError(t, err)

	result, err := Calculate(baseCabinetSpec(), []model.ExtraLine{{MaterialID: "mat-99", Quantity: 3}})
	require.NoError(t, err)

	require.Len(t, result.Materials, len(plain.Materials)+1)
	last := result.Materials[len(result.Materials)-1]
	assert.Equal(t, "mat-99", last.MaterialID)
	assert.Equal(t, 3.0, last.Quantity)
	assert.Equal(t, model.UnitPiece, last.Unit)
}

func TestCalculate_DuplicateExtrasAreSummed(t *testing.T) {
	result, err := Calculate(baseCabinetSpec(), []model.ExtraLine{
		{MaterialID: "mat-99", Quantity: 1},
		{MaterialID: "mat-99", Quantity: 2.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, result.FindMaterial("mat-99").Quantity)
}

func TestCalculate_InvalidExtras(t *testing.T) {
	_, err := Calculate(baseCabinetSpec(), []model.ExtraLine{{MaterialID: "", Quantity: 1}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Calculate(baseCabinetSpec(), []model.ExtraLine{{MaterialID: "mat-19", Quantity: 0}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCalculate_MissingHingeFails(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Selection[model.RoleHinge] = ""

	result, err := Calculate(spec, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Empty(t, result.Pieces)
	assert.Empty(t, result.Materials)
}

func TestCalculate_MissingSlideFails(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Config = model.Config{Drawers: 3}
	delete(spec.Selection, model.RoleSlide)

	_, err := Calculate(spec, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculate_MissingBoardFails(t *testing.T) {
	spec := baseCabinetSpec()
	delete(spec.Selection, model.RoleBack)

	_, err := Calculate(spec, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculate_MissingTrimIsSkipped(t *testing.T) {
	spec := baseCabinetSpec()
	for _, r := range []model.Role{model.RoleEdge, model.RoleHandle, model.RoleLeg, model.RoleScrews, model.RoleScrewsShort, model.RoleGlue, model.RoleFilm} {
		delete(spec.Selection, r)
	}

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	ids := make([]string, len(result.Materials))
	for i, m := range result.Materials {
		ids[i] = m.MaterialID
	}
	assert.Equal(t, []string{"mat-1", "mat-8", "mat-17"}, ids)
}

func TestCalculate_Desk(t *testing.T) {
	spec := model.ModuleSpec{
		ModuleType: model.TypeDesk,
		Dimensions: model.Dimensions{Width: 1200, Height: 750, Depth: 600},
		Selection:  fullSelection(),
	}

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	require.Len(t, result.Pieces, 3)
	assert.Equal(t, "Top", result.Pieces[0].Name)
	assert.Equal(t, 1200, result.Pieces[0].Length)
	assert.Equal(t, "Side", result.Pieces[1].Name)
	assert.Equal(t, 2, result.Pieces[1].Quantity)
	assert.Equal(t, 732, result.Pieces[1].Length)
	assert.Equal(t, "Back Apron", result.Pieces[2].Name)
	assert.Equal(t, 1164, result.Pieces[2].Length)
	assert.Equal(t, 300, result.Pieces[2].Width)

	for _, id := range []string{"mat-17", "mat-16", "mat-19"} {
		assert.Nil(t, result.FindMaterial(id), "desk should have no %s row", id)
	}
	legs := result.FindMaterial("mat-21")
	require.NotNil(t, legs, "desk stands on the floor")
	assert.Equal(t, 4.0, legs.Quantity)
}

func TestCalculate_OpenModuleDropsFronts(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Config.Drawers = 2
	spec.OpenModule = true
	delete(spec.Selection, model.RoleHinge)
	delete(spec.Selection, model.RoleSlide)

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Spec.Config.Doors)
	assert.Equal(t, 0, result.Spec.Config.Drawers)
	assert.Nil(t, result.FindPiece("Door"))
	assert.Nil(t, result.FindPiece("Drawer Front"))
	assert.Nil(t, result.FindMaterial("mat-19"), "no handles without fronts")
}

func TestCalculate_NoDoorsNoHinge(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Config = model.Config{Shelves: 2}

	result, err := Calculate(spec, nil)
	require.NoError(t, err)
	assert.Nil(t, result.FindMaterial("mat-17"))
	assert.Nil(t, result.FindMaterial("mat-16"))
}

func TestCalculate_Drawers(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Config = model.Config{Drawers: 3}

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	front := result.FindPiece("Drawer Front")
	require.NotNil(t, front)
	assert.Equal(t, 3, front.Quantity)
	assert.Equal(t, 797, front.Length)
	assert.Equal(t, 240, front.Width)

	side := result.FindPiece("Drawer Side")
	require.NotNil(t, side)
	assert.Equal(t, 6, side.Quantity)
	assert.Equal(t, 565, side.Length)
	assert.Equal(t, 168, side.Width)
	assert.Equal(t, model.ClassDrawerBoard, side.Class)

	back := result.FindPiece("Drawer Back")
	require.NotNil(t, back)
	assert.Equal(t, 704, back.Length)

	bottom := result.FindPiece("Drawer Bottom")
	require.NotNil(t, bottom)
	assert.Equal(t, 740, bottom.Length)
	assert.Equal(t, 565, bottom.Width)
	assert.False(t, bottom.Edges.HasAny())

	assert.Equal(t, 3.0, result.FindMaterial("mat-16").Quantity)
	assert.Equal(t, 3.0, result.FindMaterial("mat-19").Quantity)
}

func TestCalculate_TallDoorsGetThreeHinges(t *testing.T) {
	spec := model.ModuleSpec{
		ModuleType: model.TypeWardrobe,
		Dimensions: model.Dimensions{Width: 1800, Height: 2200, Depth: 550},
		Config:     model.Config{Doors: 2, HangingRods: 1},
		Selection:  fullSelection(),
	}

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	assert.Equal(t, 6.0, result.FindMaterial("mat-17").Quantity)
	assert.Equal(t, 1.744, result.FindMaterial("mat-36").Quantity)
	assert.Equal(t, 2.0, result.FindMaterial("mat-38").Quantity)
}

func TestCalculate_VisibleThicknessSizesPanels(t *testing.T) {
	settings := model.DefaultSettings()
	settings.VisibleThickness = 25
	calc := New(settings, nil)

	chest, err := calc.Calculate(model.ModuleSpec{
		ModuleType: model.TypeDrawerChest,
		Dimensions: model.Dimensions{Width: 600, Height: 800, Depth: 450},
		Config:     model.Config{Drawers: 3},
		Selection:  fullSelection(),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 775, chest.FindPiece("Side").Length)
	assert.Equal(t, 600, chest.FindPiece("Top").Length)
	assert.Equal(t, 564, chest.FindPiece("Bottom").Length)
	assert.Equal(t, 258, chest.FindPiece("Drawer Front").Width)

	desk, err := calc.Calculate(model.ModuleSpec{
		ModuleType: model.TypeDesk,
		Dimensions: model.Dimensions{Width: 1200, Height: 750, Depth: 600},
		Selection:  fullSelection(),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 725, desk.FindPiece("Side").Length)
	assert.Equal(t, 1150, desk.FindPiece("Back Apron").Length)
}

func TestCalculate_LegsFollowMount(t *testing.T) {
	tests := []struct {
		typ  model.ModuleType
		legs bool
	}{
		{model.TypeBaseCabinet, true},
		{model.TypeDesk, true},
		{model.TypeTable, true},
		{model.TypeCrib, true},
		{model.TypeWallCabinet, false},
		{model.TypeHangingVanity, false},
		{model.TypeHeadboard, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			spec := model.DefaultModuleSpec(tt.typ)
			spec.Selection = fullSelection()

			result, err := Calculate(spec, nil)
			require.NoError(t, err)

			legs := result.FindMaterial("mat-21")
			if !tt.legs {
				assert.Nil(t, legs)
				return
			}
			require.NotNil(t, legs)
			assert.Equal(t, 4.0, legs.Quantity)
		})
	}
}

func TestCalculate_RodsFollowCompartments(t *testing.T) {
	spec := model.ModuleSpec{
		ModuleType: model.TypeWardrobe,
		Dimensions: model.Dimensions{Width: 1800, Height: 2200, Depth: 550},
		Config:     model.Config{Divisions: 1, HangingRods: 2},
		Selection:  fullSelection(),
	}

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.706, result.FindMaterial("mat-36").Quantity)
	assert.Equal(t, 4.0, result.FindMaterial("mat-38").Quantity)

	division := result.FindPiece("Division")
	require.NotNil(t, division)
	assert.Equal(t, 2164, division.Length)
	assert.Equal(t, 547, division.Width)
}

func TestCalculate_MissingRodFails(t *testing.T) {
	spec := model.ModuleSpec{
		ModuleType: model.TypeWardrobe,
		Dimensions: model.Dimensions{Width: 1800, Height: 2200, Depth: 550},
		Config:     model.Config{HangingRods: 1},
		Selection:  fullSelection(),
	}
	delete(spec.Selection, model.RoleRod)

	_, err := Calculate(spec, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculate_GlassDoors(t *testing.T) {
	spec := baseCabinetSpec()
	spec.DoorType = model.DoorGlass

	result, err := Calculate(spec, nil)
	require.NoError(t, err)

	assert.Nil(t, result.FindPiece("Door"), "glass doors are not board panels")
	assert.Equal(t, 4.0, result.FindMaterial("mat-17").Quantity)
	assert.Equal(t, 4.468, result.FindMaterial("mat-63").Quantity)
	assert.Equal(t, 0.4855, result.FindMaterial("mat-67").Quantity)
}

func TestCalculate_GlassDoorsNeedGlassRoles(t *testing.T) {
	spec := baseCabinetSpec()
	spec.DoorType = model.DoorGlass
	delete(spec.Selection, model.RoleGlassPanel)

	_, err := Calculate(spec, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculate_ModuleTooSmall(t *testing.T) {
	spec := baseCabinetSpec()
	spec.Dimensions.Width = 30

	_, err := Calculate(spec, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCalculate_InvalidSettings(t *testing.T) {
	s := model.DefaultSettings()
	s.StructuralThickness = 0

	_, err := New(s, nil).Calculate(baseCabinetSpec(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	spec := baseCabinetSpec()
	spec.OpenModule = true
	spec.Selection[model.RoleEdge] = "  mat-12  "

	_, err := Calculate(spec, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, spec.Config.Doors)
	assert.Equal(t, "  mat-12  ", spec.Selection[model.RoleEdge])
}

func TestCalculate_AllTypesProduceValidResults(t *testing.T) {
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			spec := model.DefaultModuleSpec(typ)
			spec.Selection = fullSelection()

			result, err := Calculate(spec, nil)
			require.NoError(t, err)
			require.NotEmpty(t, result.Pieces)

			seen := make(map[string]bool)
			for _, p := range result.Pieces {
				assert.Greater(t, p.Length, 0, "%s length", p.Name)
				assert.Greater(t, p.Width, 0, "%s width", p.Name)
				assert.GreaterOrEqual(t, p.Quantity, 1, "%s quantity", p.Name)

				key := fmt.Sprintf("%s/%d/%d/%s", p.Name, p.Length, p.Width, p.Edges)
				assert.False(t, seen[key], "duplicate panel %s", key)
				seen[key] = true
			}

			ids := make(map[string]bool)
			for _, m := range result.Materials {
				assert.False(t, ids[m.MaterialID], "duplicate row %s", m.MaterialID)
				ids[m.MaterialID] = true
				assert.GreaterOrEqual(t, m.Quantity, 0.0)
			}

			edge := result.FindMaterial("mat-12")
			mm := EdgeLength(result.Pieces)
			if mm == 0 {
				assert.Nil(t, edge)
			} else {
				require.NotNil(t, edge)
				assert.Equal(t, round4(mm/1000), edge.Quantity)
			}

			if result.Spec.Config.Doors == 0 {
				assert.Nil(t, result.FindMaterial("mat-17"))
			}
			if result.Spec.Config.Drawers == 0 {
				assert.Nil(t, result.FindMaterial("mat-16"))
			}
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	extras := []model.ExtraLine{{MaterialID: "mat-99", Quantity: 2}}
	for _, typ := range Types() {
		spec := model.DefaultModuleSpec(typ)
		spec.Selection = fullSelection()

		first, err := Calculate(spec, extras)
		require.NoError(t, err)
		second, err := Calculate(spec, extras)
		require.NoError(t, err)

		assert.Equal(t, first, second, "%s should be idempotent", typ)
	}
}

func TestMergeExtras(t *testing.T) {
	rows := []model.MaterialUsage{{MaterialID: "H2", Quantity: 2, Unit: model.UnitPiece}}

	merged, err := MergeExtras(rows, []model.ExtraLine{{MaterialID: "H2", Quantity: 3}}, nil)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, 5.0, merged[0].Quantity)
	assert.Equal(t, 2.0, rows[0].Quantity, "input must not change")

	merged, err = MergeExtras(nil, []model.ExtraLine{{MaterialID: "H2", Quantity: 3}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []model.MaterialUsage{{MaterialID: "H2", Quantity: 3, Unit: model.UnitPiece}}, merged)

	_, err = MergeExtras(rows, []model.ExtraLine{{MaterialID: "H2", Quantity: -1}}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
