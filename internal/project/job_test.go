package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJob() Job {
	return Job{
		Profile: "White Melamine",
		Module: model.ModuleSpec{
			Label:      "Sink Unit",
			ModuleType: model.TypeBaseCabinet,
			Dimensions: model.Dimensions{Width: 800, Height: 720, Depth: 580},
			Config:     model.Config{Doors: 2, Shelves: 1},
			Selection:  model.ComponentSelection{model.RoleHinge: "mat-48"},
			DoorType:   model.DoorBoard,
		},
		Extras: []model.ExtraLine{{MaterialID: "mat-60", Quantity: 2}},
	}
}

func TestSaveAndLoadJob_AllFormats(t *testing.T) {
	for _, name := range []string{"job.toml", "job.yaml", "job.yml", "job.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			job := sampleJob()

			require.NoError(t, SaveJob(path, job))
			loaded, err := LoadJob(path)
			require.NoError(t, err)

			assert.Equal(t, job, loaded)
		})
	}
}

func TestLoadJob_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.toml")
	data := `profile = "Premium Hardware"

[module]
label = "Master Wardrobe"
module_type = "placard"
open_module = false

[module.dimensions]
width = 1800
height = 2200
depth = 550

[module.config]
doors = 2
drawers = 4
hanging_rods = 2

[module.component_selection]
hinge = "mat-17"

[[extras]]
material_id = "mat-60"
quantity = 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, "Premium Hardware", job.Profile)
	assert.Equal(t, model.TypeWardrobe, job.Module.ModuleType)
	assert.Equal(t, 2200, job.Module.Dimensions.Height)
	assert.Equal(t, 2, job.Module.Config.HangingRods)
	assert.Equal(t, "mat-17", job.Module.Selection[model.RoleHinge])
	require.Len(t, job.Extras, 1)
	assert.Equal(t, 4.0, job.Extras[0].Quantity)
}

func TestLoadJob_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.yaml")
	data := `module:
  module_type: escritorio
  dimensions:
    width: 1200
    height: 750
    depth: 600
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, model.TypeDesk, job.Module.ModuleType)
	assert.NotNil(t, job.Module.Selection)
	assert.Empty(t, job.Profile)
}

func TestLoadJob_JSONWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upper.jsonc")
	data := `{
  // kitchen, left wall
  "profile": "White Melamine",
  "module": {
    "module_type": "alacena",
    "dimensions": {"width": 900, "height": 700, "depth": 330,},
    /* two doors, two shelves */
    "config": {"doors": 2, "shelves": 2},
  },
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, model.TypeWallCabinet, job.Module.ModuleType)
	assert.Equal(t, 900, job.Module.Dimensions.Width)
	assert.Equal(t, 2, job.Module.Config.Shelves)
	assert.Equal(t, "White Melamine", job.Profile)
}

func TestLoadJob_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadJob(filepath.Join(dir, "job.xml"))
	assert.Error(t, err, "unsupported extension")

	_, err = LoadJob(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadJob(bad)
	assert.Error(t, err)
}

func TestResolveSpec(t *testing.T) {
	job := sampleJob()

	spec, err := job.ResolveSpec(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "mat-48", spec.Selection[model.RoleHinge], "module selection wins")
	assert.Equal(t, "mat-1", spec.Selection[model.RoleStructural], "profile fills the rest")

	job.Profile = ""
	spec, err = job.ResolveSpec(nil, "Paraiso Veneer")
	require.NoError(t, err)
	assert.Equal(t, "mat-10", spec.Selection[model.RoleVisible])

	custom := []model.SelectionProfile{{Name: "Shop", Selection: model.ComponentSelection{model.RoleEdge: "mat-99"}}}
	job.Profile = "Shop"
	spec, err = job.ResolveSpec(custom, "")
	require.NoError(t, err)
	assert.Equal(t, "mat-99", spec.Selection[model.RoleEdge])
	assert.Equal(t, "mat-48", spec.Selection[model.RoleHinge])

	job.Profile = "Nope"
	_, err = job.ResolveSpec(nil, "")
	assert.Error(t, err)
}

func TestResolveSpec_EmptyRoleUnsetsProfile(t *testing.T) {
	job := sampleJob()
	job.Module.Selection[model.RoleHinge] = ""

	spec, err := job.ResolveSpec(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "", spec.Selection.Get(model.RoleHinge))
	assert.Equal(t, "mat-1", spec.Selection[model.RoleStructural])
}

func TestResolveSpec_NoProfile(t *testing.T) {
	job := sampleJob()
	job.Profile = ""

	spec, err := job.ResolveSpec(nil, "")
	require.NoError(t, err)
	assert.Equal(t, model.ComponentSelection{model.RoleHinge: "mat-48"}, spec.Selection)

	spec.Selection[model.RoleEdge] = "mat-12"
	assert.NotContains(t, job.Module.Selection, model.RoleEdge)
}
