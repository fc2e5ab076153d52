package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

// runCLI executes the root command against a data directory and returns what
// was printed to the output writer.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func calcJSON(t *testing.T, dir string, args ...string) model.CalculationResult {
	t.Helper()
	out, err := runCLI(t, dir, append([]string{"calc", "--json"}, args...)...)
	require.NoError(t, err)
	var result model.CalculationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
	return result
}

func TestTypesCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "types")
	require.NoError(t, err)
	for _, typ := range engine.Types() {
		assert.Contains(t, out, string(typ))
	}
	assert.Contains(t, out, "Wardrobe")
}

func TestCalcBaseCabinet(t *testing.T) {
	dir := t.TempDir()
	result := calcJSON(t, dir, "--type", "bajo-mesada", "-W", "800", "-H", "720", "-D", "580", "--doors", "2", "--shelves", "1")

	assert.Equal(t, model.TypeBaseCabinet, result.Spec.ModuleType)
	assert.Len(t, result.Pieces, 5)
	assert.Equal(t, 7, result.PieceCount())
	assert.NotEmpty(t, result.Materials)
	assert.Equal(t, "mat-1", result.Pieces[0].MaterialID, "default profile binds the structural board")
}

func TestCalcTable(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "calc", "--type", "bajo-mesada", "--label", "Sink Unit")
	require.NoError(t, err)
	assert.Contains(t, out, "Sink Unit")
	assert.Contains(t, out, "Side")
	assert.Contains(t, out, "White Melamine 18mm on MDF")
	assert.Contains(t, out, "Board area")
}

func TestCalcDraft(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "calc", "--type", "bajo-mesada", "--label", "Sink", "--draft", "--json")
	require.NoError(t, err)

	var draft engine.ProductDraft
	require.NoError(t, json.Unmarshal([]byte(out), &draft))
	assert.Equal(t, "Sink 800x720", draft.Name)
	assert.Equal(t, model.TypeBaseCabinet, draft.ModuleType)
	assert.NotEmpty(t, draft.Category)
	assert.NotEmpty(t, draft.Materials)

	out, err = runCLI(t, dir, "calc", "--type", "bajo-mesada", "--label", "Sink", "--draft")
	require.NoError(t, err)
	assert.Contains(t, out, "Sink 800x720")
	assert.Contains(t, out, "Category")
}

func TestCalcUnknownType(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "calc", "--type", "spaceship")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUnknownModuleType)
}

func TestCalcUnknownProfile(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "calc", "--type", "alacena", "-p", "No Such Profile")
	assert.ErrorContains(t, err, "not found")
}

func TestCalcEmptySelectionOverridesProfile(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "calc", "--type", "bajo-mesada", "--doors", "2", "--select", "hinge=")
	assert.ErrorIs(t, err, engine.ErrConfiguration)
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(version)
	SetVersion("1.2.3")

	root := New(&bytes.Buffer{}, &bytes.Buffer{}, LogInfo).RootCommand()
	assert.Equal(t, "1.2.3", root.Version)
}

func TestCalcWritesReportsAndJob(t *testing.T) {
	dir := t.TempDir()
	files := t.TempDir()
	csvPath := filepath.Join(files, "cut.csv")
	xlsxPath := filepath.Join(files, "cut.xlsx")
	jobPath := filepath.Join(files, "sink.toml")

	out, err := runCLI(t, dir, "calc", "--type", "bajo-mesada", "--label", "Sink",
		"--extra", "mat-60=2", "--csv", csvPath, "--xlsx", xlsxPath, "--save-job", jobPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 3 file(s)")
	for _, p := range []string{csvPath, xlsxPath, jobPath} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}

	job, err := project.LoadJob(jobPath)
	require.NoError(t, err)
	assert.Equal(t, "Sink", job.Module.Label)
	assert.Equal(t, []model.ExtraLine{{MaterialID: "mat-60", Quantity: 2}}, job.Extras)

	fromFile := calcJSON(t, dir, jobPath)
	assert.Equal(t, "Sink", fromFile.Spec.Label)
	assert.Equal(t, 7, fromFile.PieceCount())

	cfg, err := project.LoadAppConfig(filepath.Join(dir, configFile))
	require.NoError(t, err)
	require.NotEmpty(t, cfg.RecentJobs)
	assert.Equal(t, jobPath, cfg.RecentJobs[0])
}

func TestCompareCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "compare", "--type", "alacena", "--doors", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "As Specified")
	assert.Contains(t, out, "Open Module")
	assert.Contains(t, out, "Glass Doors")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	files := t.TempDir()
	input := filepath.Join(files, "kitchen.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"label,type,width,height,depth,doors,shelves\n"+
			"Sink,bajo-mesada,800,720,580,2,1\n"+
			"Pantry,bajo-mesada,600,720,580,1,2\n"), 0644))
	outDir := filepath.Join(files, "build")

	out, err := runCLI(t, dir, "batch", input, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Sink")
	assert.Contains(t, out, "Pantry")
	assert.Contains(t, out, "Combined materials")

	for _, name := range []string{"Sink.xlsx", "Pantry.xlsx", "materials.csv"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestBatchNothingImported(t *testing.T) {
	input := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(input, []byte("label,type,width,height,depth\n"), 0644))

	_, err := runCLI(t, t.TempDir(), "batch", input)
	assert.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+catalogFile)

	for _, name := range []string{configFile, catalogFile, presetsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	store, err := project.LoadPresets(filepath.Join(dir, presetsFile))
	require.NoError(t, err)
	assert.Len(t, store.Presets, len(engine.Types()))

	out, err = runCLI(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Keeping")
}

func TestPresetsLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No presets saved")

	_, err = runCLI(t, dir, "presets", "save", "My Sink", "--type", "bajo-mesada", "-W", "900", "--description", "wide sink")
	require.NoError(t, err)

	out, err = runCLI(t, dir, "presets", "show", "My Sink")
	require.NoError(t, err)
	assert.Contains(t, out, "Base Cabinet")
	assert.Contains(t, out, "900")

	result := calcJSON(t, dir, "--preset", "My Sink")
	assert.Equal(t, 900, result.Spec.Dimensions.Width)
	assert.Equal(t, "My Sink", result.Spec.Label)

	_, err = runCLI(t, dir, "presets", "init")
	assert.Error(t, err, "init refuses to replace saved presets")

	_, err = runCLI(t, dir, "presets", "remove", "My Sink")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "presets", "show", "My Sink")
	assert.Error(t, err)

	out, err = runCLI(t, dir, "presets", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
}

func TestProfilesExportImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "profile.json")

	_, err := runCLI(t, dir, "profiles", "export", model.DefaultProfileName, path)
	require.NoError(t, err)

	_, err = runCLI(t, dir, "profiles", "import", path)
	assert.Error(t, err, "a built-in profile cannot be replaced")

	p, err := project.ImportProfile(path)
	require.NoError(t, err)
	p.Name = "Shop"
	require.NoError(t, project.ExportProfile(path, p))

	_, err = runCLI(t, dir, "profiles", "import", path)
	require.NoError(t, err)

	out, err := runCLI(t, dir, "profiles", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Shop")
	assert.Contains(t, out, "custom")

	out, err = runCLI(t, dir, "profiles", "show", "Shop")
	require.NoError(t, err)
	assert.Contains(t, out, "structural")

	result := calcJSON(t, dir, "--type", "alacena", "-p", "Shop")
	assert.NotEmpty(t, result.Materials)
}

func TestCatalogCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "catalog", "list", "--type", model.MaterialBoard)
	require.NoError(t, err)
	assert.Contains(t, out, "White Melamine 18mm on MDF")

	_, err = runCLI(t, dir, "catalog", "add", "HND-99", "Brass knob", "--type", model.MaterialHardware)
	require.NoError(t, err)
	out, err = runCLI(t, dir, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Brass knob")

	_, err = runCLI(t, dir, "catalog", "add", "HND-99", "Another knob")
	assert.Error(t, err, "duplicate codes are rejected")

	_, err = runCLI(t, dir, "catalog", "remove", "mat-67")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "catalog", "remove", "mat-67")
	assert.Error(t, err, "already removed")

	_, err = runCLI(t, dir, "catalog", "reset")
	require.NoError(t, err)
	out, err = runCLI(t, dir, "catalog", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Brass knob")
}

func TestBackupRoundTrip(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	path := filepath.Join(t.TempDir(), "backup.json")

	_, err := runCLI(t, src, "presets", "save", "Tall", "--type", "columna-horno")
	require.NoError(t, err)
	_, err = runCLI(t, src, "backup", "export", path)
	require.NoError(t, err)

	_, err = runCLI(t, dst, "backup", "import", path)
	require.NoError(t, err)

	out, err := runCLI(t, dst, "presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tall")

	catalog, err := project.LoadCatalog(filepath.Join(dst, catalogFile))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCatalog().Materials, catalog.Materials)
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MODULECUT_DATA_DIR", dir)
	t.Setenv("MODULECUT_DEBUG", "true")

	c := New(&bytes.Buffer{}, &bytes.Buffer{}, LogInfo)
	assert.True(t, c.DebugFromEnv())
	flag := c.RootCommand().PersistentFlags().Lookup("data-dir")
	require.NotNil(t, flag)
	assert.Equal(t, dir, flag.DefValue)

	t.Setenv("MODULECUT_PROFILE", "No Such Profile")
	_, err := runCLI(t, dir, "calc", "--type", "alacena")
	assert.ErrorContains(t, err, "No Such Profile")

	_, err = runCLI(t, dir, "calc", "--type", "alacena", "-p", model.DefaultProfileName)
	assert.NoError(t, err, "an explicit profile wins over the environment")
}
