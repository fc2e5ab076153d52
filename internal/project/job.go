package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// Job is one module to calculate, as stored in a job file.
type Job struct {
	// Profile names the selection profile that fills roles the module leaves unset.
	Profile string            `json:"profile,omitempty" toml:"profile,omitempty" yaml:"profile,omitempty"`
	Module  model.ModuleSpec  `json:"module" toml:"module" yaml:"module"`
	Extras  []model.ExtraLine `json:"extras,omitempty" toml:"extras,omitempty" yaml:"extras,omitempty"`
}

// JobFormat identifies the encoding of a job file.
type JobFormat string

const (
	FormatTOML JobFormat = "toml"
	FormatYAML JobFormat = "yaml"
	FormatJSON JobFormat = "json"
)

// FormatFromPath picks the job format from a file extension.
func FormatFromPath(path string) (JobFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported job file extension %q (use .toml, .yaml or .json)", filepath.Ext(path))
	}
}

// LoadJob reads a job file. The format follows the file extension.
func LoadJob(path string) (Job, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Job{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job file: %w", err)
	}
	job, err := DecodeJob(data, format)
	if err != nil {
		return Job{}, fmt.Errorf("failed to parse job file %s: %w", filepath.Base(path), err)
	}
	return job, nil
}

// DecodeJob parses job data in the given format.
func DecodeJob(data []byte, format JobFormat) (Job, error) {
	var job Job
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &job)
	case FormatYAML:
		err = yaml.Unmarshal(data, &job)
	case FormatJSON:
		// Comments and trailing commas are allowed in hand-written job files.
		err = json.Unmarshal(jsonc.ToJSON(data), &job)
	default:
		return Job{}, fmt.Errorf("unknown job format %q", format)
	}
	if err != nil {
		return Job{}, err
	}
	if job.Module.Selection == nil {
		job.Module.Selection = model.ComponentSelection{}
	}
	return job, nil
}

// EncodeJob serializes a job in the given format.
func EncodeJob(job Job, format JobFormat) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(job); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(job)
	case FormatJSON:
		return json.MarshalIndent(job, "", "  ")
	default:
		return nil, fmt.Errorf("unknown job format %q", format)
	}
}

// SaveJob writes a job file in the format matching its extension.
func SaveJob(path string, job Job) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := EncodeJob(job, format)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// ResolveSpec returns the module spec with its component selection filled
// from the job's profile, or from fallback when the job names none. Roles the
// module sets itself win over the profile; a role the module lists with an
// empty material stays unset even when the profile binds it.
func (j Job) ResolveSpec(custom []model.SelectionProfile, fallback string) (model.ModuleSpec, error) {
	name := j.Profile
	if name == "" {
		name = fallback
	}
	spec := j.Module
	if name == "" {
		spec.Selection = spec.Selection.Clone()
		return spec, nil
	}
	profile, ok := model.FindSelectionProfile(name, custom)
	if !ok {
		return model.ModuleSpec{}, fmt.Errorf("selection profile %q not found", name)
	}
	spec.Selection = profile.Selection.Merge(j.Module.Selection)
	return spec, nil
}
