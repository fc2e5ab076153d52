package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ModuleCut/internal/model"
)

func TestParseExtra(t *testing.T) {
	tests := []struct {
		in      string
		want    model.ExtraLine
		wantErr bool
	}{
		{"mat-60=2", model.ExtraLine{MaterialID: "mat-60", Quantity: 2}, false},
		{" mat-61 = 0.5 ", model.ExtraLine{MaterialID: "mat-61", Quantity: 0.5}, false},
		{"mat-60", model.ExtraLine{}, true},
		{"=3", model.ExtraLine{}, true},
		{"mat-60=two", model.ExtraLine{}, true},
	}
	for _, tt := range tests {
		got, err := parseExtra(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseExtra(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseExtra(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseExtra(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseBinding(t *testing.T) {
	role, id, err := parseBinding("hinge=mat-40")
	require.NoError(t, err)
	assert.Equal(t, model.RoleHinge, role)
	assert.Equal(t, "mat-40", id)

	_, _, err = parseBinding("hinge")
	assert.Error(t, err)

	_, _, err = parseBinding("doorknob=mat-1")
	assert.Error(t, err, "unknown roles are rejected")
}

func newSpecCommand(f *specFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.register(cmd)
	return cmd
}

func TestSpecFlagsFromType(t *testing.T) {
	var f specFlags
	cmd := newSpecCommand(&f)
	require.NoError(t, cmd.ParseFlags([]string{
		"--type", "Wardrobe", "-W", "1500", "--doors", "3", "--select", "hinge=mat-40", "--extra", "mat-60=2",
	}))

	job, err := f.job(cmd, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.TypeWardrobe, job.Module.ModuleType)
	assert.Equal(t, 1500, job.Module.Dimensions.Width)
	assert.Equal(t, 2200, job.Module.Dimensions.Height, "factory height is kept")
	assert.Equal(t, 3, job.Module.Config.Doors)
	assert.Equal(t, 2, job.Module.Config.HangingRods, "factory rods are kept")
	assert.Equal(t, "mat-40", job.Module.Selection[model.RoleHinge])
	assert.Equal(t, []model.ExtraLine{{MaterialID: "mat-60", Quantity: 2}}, job.Extras)
}

func TestSpecFlagsZeroOverridesDefault(t *testing.T) {
	var f specFlags
	cmd := newSpecCommand(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--type", "placard", "--drawers", "0"}))

	job, err := f.job(cmd, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, job.Module.Config.Drawers)
}

func TestSpecFlagsFromPreset(t *testing.T) {
	store := model.NewPresetStore()
	spec := model.DefaultModuleSpec(model.TypeWallCabinet)
	spec.Selection[model.RoleHandle] = "mat-50"
	store.Add(model.NewModulePreset("Upper", "", spec))
	presets := func() (model.PresetStore, error) { return store, nil }

	var f specFlags
	cmd := newSpecCommand(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "Upper", "--shelves", "3"}))

	job, err := f.job(cmd, nil, presets)
	require.NoError(t, err)
	assert.Equal(t, model.TypeWallCabinet, job.Module.ModuleType)
	assert.Equal(t, "Upper", job.Module.Label)
	assert.Equal(t, 3, job.Module.Config.Shelves)

	job.Module.Selection[model.RoleHandle] = "changed"
	assert.Equal(t, "mat-50", store.Presets[0].Spec.Selection[model.RoleHandle], "preset must not be modified")
}

func TestSpecFlagsErrors(t *testing.T) {
	presets := func() (model.PresetStore, error) { return model.NewPresetStore(), nil }

	var f specFlags
	cmd := newSpecCommand(&f)
	require.NoError(t, cmd.ParseFlags(nil))
	_, err := f.job(cmd, nil, presets)
	assert.Error(t, err, "a source for the module is required")

	f = specFlags{}
	cmd = newSpecCommand(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "missing"}))
	_, err = f.job(cmd, nil, presets)
	assert.ErrorContains(t, err, "not found")

	f = specFlags{}
	cmd = newSpecCommand(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--type", "alacena", "--extra", "bad"}))
	_, err = f.job(cmd, nil, presets)
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.27551, "2.2755"},
		{1234.5, "1,234.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileSafe(t *testing.T) {
	assert.Equal(t, "Kitchen_1_sink", fileSafe("Kitchen 1/sink"))
	assert.Equal(t, "a_b_c", fileSafe(`a\b:c`))
}
