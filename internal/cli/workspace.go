package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/export"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

// File names inside the data directory.
const (
	configFile   = "config.json"
	catalogFile  = "catalog.json"
	presetsFile  = "presets.json"
	profilesFile = "profiles.json"
)

// workspace is the user data every calculation needs.
type workspace struct {
	dir      string
	profile  string // default selection profile
	config   model.AppConfig
	catalog  model.Catalog
	profiles []model.SelectionProfile
}

func (c *CLI) loadWorkspace(logger *log.Logger) (*workspace, error) {
	ws := &workspace{dir: c.dataDir}

	var err error
	if ws.config, err = project.LoadAppConfig(ws.path(configFile)); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if ws.catalog, err = project.LoadCatalog(ws.path(catalogFile)); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if ws.profiles, err = project.LoadCustomProfiles(ws.path(profilesFile)); err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	ws.profile = ws.config.DefaultProfile
	if c.env.Profile != "" {
		ws.profile = c.env.Profile
	}

	logger.Debug("Loaded workspace", "dir", ws.dir, "materials", len(ws.catalog.Materials), "profiles", len(ws.profiles), "profile", ws.profile)
	return ws, nil
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.dir, name)
}

func (w *workspace) settings() model.CalcSettings {
	s := model.DefaultSettings()
	w.config.ApplyToSettings(&s)
	return s
}

func (w *workspace) calculator() *engine.Calculator {
	return engine.New(w.settings(), &w.catalog)
}

func (w *workspace) report(result model.CalculationResult) export.Report {
	return export.NewReport(result, &w.catalog, w.config)
}

// resolve fills the job's component selection from its profile, falling back
// to the default profile.
func (w *workspace) resolve(job project.Job) (model.ModuleSpec, error) {
	return job.ResolveSpec(w.profiles, w.profile)
}

// rememberJob records a job file in the recent list and saves the config.
func (w *workspace) rememberJob(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	w.config.AddRecentJob(abs)
	return project.SaveAppConfig(w.path(configFile), w.config)
}
