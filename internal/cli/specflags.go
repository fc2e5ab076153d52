package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/importer"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

// specFlags describes a module on the command line. A job file, a preset or
// a module type provides the base; the remaining flags override it.
type specFlags struct {
	preset    string
	typ       string
	label     string
	width     int
	height    int
	depth     int
	doors     int
	drawers   int
	shelves   int
	divisions int
	rods      int
	doorType  string
	open      bool
	profile   string
	extras    []string
	selection []string
}

func (f *specFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.preset, "preset", "", "start from a saved preset (by name)")
	fl.StringVarP(&f.typ, "type", "t", "", "module type tag or label, e.g. placard or Wardrobe")
	fl.StringVar(&f.label, "label", "", "module label")
	fl.IntVarP(&f.width, "width", "W", 0, "outer width in mm")
	fl.IntVarP(&f.height, "height", "H", 0, "outer height in mm")
	fl.IntVarP(&f.depth, "depth", "D", 0, "outer depth in mm")
	fl.IntVar(&f.doors, "doors", 0, "number of doors")
	fl.IntVar(&f.drawers, "drawers", 0, "number of drawers")
	fl.IntVar(&f.shelves, "shelves", 0, "number of shelves")
	fl.IntVar(&f.divisions, "divisions", 0, "number of vertical divisions")
	fl.IntVar(&f.rods, "rods", 0, "number of hanging rods")
	fl.StringVar(&f.doorType, "door-type", "", "door type: board or glass")
	fl.BoolVar(&f.open, "open", false, "open module (no doors or drawers)")
	fl.StringVarP(&f.profile, "profile", "p", "", "selection profile filling unset component roles")
	fl.StringArrayVar(&f.extras, "extra", nil, "extra hardware line as material=quantity (repeatable)")
	fl.StringArrayVar(&f.selection, "select", nil, "component role binding as role=material (repeatable)")
}

// job builds the job to calculate from an optional job file argument and the flags.
func (f *specFlags) job(cmd *cobra.Command, args []string, presets func() (model.PresetStore, error)) (project.Job, error) {
	var job project.Job
	switch {
	case len(args) > 0:
		loaded, err := project.LoadJob(args[0])
		if err != nil {
			return project.Job{}, err
		}
		job = loaded
	case f.preset != "":
		store, err := presets()
		if err != nil {
			return project.Job{}, fmt.Errorf("load presets: %w", err)
		}
		p := store.FindByName(f.preset)
		if p == nil {
			return project.Job{}, fmt.Errorf("preset %q not found", f.preset)
		}
		job.Module = p.ToSpec()
	case f.typ != "":
		t, _ := importer.ParseModuleType(f.typ)
		job.Module = model.DefaultModuleSpec(t)
	default:
		return project.Job{}, errors.New("a job file, --preset or --type is required")
	}

	fl := cmd.Flags()
	spec := &job.Module
	if fl.Changed("type") && (len(args) > 0 || f.preset != "") {
		spec.ModuleType, _ = importer.ParseModuleType(f.typ)
	}
	if fl.Changed("label") {
		spec.Label = f.label
	}
	for _, o := range []struct {
		name string
		src  int
		dst  *int
	}{
		{"width", f.width, &spec.Dimensions.Width},
		{"height", f.height, &spec.Dimensions.Height},
		{"depth", f.depth, &spec.Dimensions.Depth},
		{"doors", f.doors, &spec.Config.Doors},
		{"drawers", f.drawers, &spec.Config.Drawers},
		{"shelves", f.shelves, &spec.Config.Shelves},
		{"divisions", f.divisions, &spec.Config.Divisions},
		{"rods", f.rods, &spec.Config.HangingRods},
	} {
		if fl.Changed(o.name) {
			*o.dst = o.src
		}
	}
	if fl.Changed("door-type") {
		spec.DoorType = model.DoorType(f.doorType)
	}
	if fl.Changed("open") {
		spec.OpenModule = f.open
	}
	if fl.Changed("profile") {
		job.Profile = f.profile
	}

	spec.Selection = spec.Selection.Clone()
	for _, s := range f.selection {
		role, id, err := parseBinding(s)
		if err != nil {
			return project.Job{}, err
		}
		spec.Selection[role] = id
	}
	for _, s := range f.extras {
		line, err := parseExtra(s)
		if err != nil {
			return project.Job{}, err
		}
		job.Extras = append(job.Extras, line)
	}
	return job, nil
}

// parseExtra parses "material=quantity".
func parseExtra(s string) (model.ExtraLine, error) {
	id, qty, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return model.ExtraLine{}, fmt.Errorf("invalid extra %q, want material=quantity", s)
	}
	q, err := strconv.ParseFloat(strings.TrimSpace(qty), 64)
	if err != nil {
		return model.ExtraLine{}, fmt.Errorf("invalid extra quantity in %q: %w", s, err)
	}
	return model.ExtraLine{MaterialID: strings.TrimSpace(id), Quantity: q}, nil
}

// parseBinding parses "role=material".
func parseBinding(s string) (model.Role, string, error) {
	name, id, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid selection %q, want role=material", s)
	}
	role, err := model.ParseRole(strings.TrimSpace(name))
	if err != nil {
		return "", "", err
	}
	return role, strings.TrimSpace(id), nil
}
