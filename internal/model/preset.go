package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type moduleDefault struct {
	dims   Dimensions
	config Config
}

// Factory dimensions and feature counts offered when a module type is first picked.
var moduleDefaults = map[ModuleType]moduleDefault{
	TypeWardrobe:       {Dimensions{1800, 2200, 550}, Config{Doors: 2, Drawers: 4, Shelves: 4, Divisions: 1, HangingRods: 2}},
	TypeTVRack:         {Dimensions{1600, 500, 400}, Config{Doors: 2, Drawers: 1, Shelves: 1, Divisions: 1}},
	TypeDesk:           {Dimensions{1200, 750, 600}, Config{}},
	TypeDrawerBed:      {Dimensions{1400, 350, 1900}, Config{Drawers: 4, Divisions: 1}},
	TypeShoeCabinet:    {Dimensions{800, 1200, 350}, Config{Doors: 2, Shelves: 5}},
	TypeTable:          {Dimensions{1400, 750, 800}, Config{}},
	TypeCornerBase:     {Dimensions{900, 720, 900}, Config{Doors: 2, Shelves: 1}},
	TypeCornerWall:     {Dimensions{600, 720, 600}, Config{Doors: 2, Shelves: 2}},
	TypeHeadboard:      {Dimensions{1500, 1200, 40}, Config{}},
	TypeCrib:           {Dimensions{1240, 900, 640}, Config{}},
	TypeMicrowaveStand: {Dimensions{600, 400, 400}, Config{Shelves: 1}},
	TypeWorkstation:    {Dimensions{1400, 750, 600}, Config{Drawers: 1, Divisions: 1}},
	TypeServiceCounter: {Dimensions{1800, 1100, 700}, Config{Shelves: 1, Divisions: 1}},
}

var genericDefault = moduleDefault{Dimensions{800, 720, 580}, Config{Doors: 2, Shelves: 1}}

// DefaultModuleSpec returns the factory spec for a module type with an empty
// component selection and board doors.
func DefaultModuleSpec(t ModuleType) ModuleSpec {
	d, ok := moduleDefaults[t]
	if !ok {
		d = genericDefault
	}
	return ModuleSpec{
		ModuleType: t,
		Dimensions: d.dims,
		Config:     d.config,
		Selection:  ComponentSelection{},
		DoorType:   DoorBoard,
	}
}

// ModulePreset is a named, reusable module spec.
type ModulePreset struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	Spec        ModuleSpec `json:"spec"`
}

// NewModulePreset creates a new preset from the given spec.
// The selection is copied so later edits to spec do not leak into the preset.
func NewModulePreset(name, description string, spec ModuleSpec) ModulePreset {
	now := time.Now().UTC().Format(time.RFC3339)
	spec.Selection = spec.Selection.Clone()
	return ModulePreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Spec:        spec,
	}
}

// ToSpec returns an independent copy of the preset's spec.
func (p ModulePreset) ToSpec() ModuleSpec {
	spec := p.Spec
	spec.Selection = p.Spec.Selection.Clone()
	if spec.Label == "" {
		spec.Label = p.Name
	}
	return spec
}

// PresetStore holds a collection of module presets.
type PresetStore struct {
	Presets []ModulePreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []ModulePreset{},
	}
}

// DefaultPresetStore returns a store with one factory preset per given module type.
func DefaultPresetStore(types []ModuleType, label func(ModuleType) string) PresetStore {
	store := NewPresetStore()
	for _, t := range types {
		spec := DefaultModuleSpec(t)
		name := label(t)
		store.Add(NewModulePreset(name, fmt.Sprintf("Factory %s %s", name, spec.Dimensions), spec))
	}
	return store
}

// Add adds a preset to the store.
func (ps *PresetStore) Add(p ModulePreset) {
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (ps *PresetStore) Remove(id string) bool {
	for i, p := range ps.Presets {
		if p.ID == id {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (ps *PresetStore) FindByID(id string) *ModulePreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == id {
			return &ps.Presets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *ModulePreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns a list of preset names.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
