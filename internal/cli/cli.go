// Package cli implements the modulecut command-line interface.
//
// Commands decompose furniture modules into cut lists and bills of materials,
// compare variants, run batches from spreadsheets and manage the local
// catalog, presets and selection profiles. All commands support --verbose
// (-v) for debug-level logging; the logger travels on the command context.
//
// MODULECUT_DATA_DIR, MODULECUT_PROFILE and MODULECUT_DEBUG override the data
// directory, the default selection profile and the log level.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/project"
)

const appName = "modulecut"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	out     printer
	env     environment
	dataDir string
}

// New creates a CLI printing results to out and logging to logw.
// MODULECUT_* environment variables are read once here.
func New(out, logw io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(logw, level),
		out:    printer{w: out},
	}
	e, err := parseEnvironment()
	if err != nil {
		c.Logger.Warn("Ignoring environment", "err", err)
	}
	c.env = e
	return c
}

// DebugFromEnv reports whether MODULECUT_DEBUG asks for debug logging.
func (c *CLI) DebugFromEnv() bool {
	return c.env.Debug
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ModuleCut decomposes furniture modules into cut lists",
		Long:         `ModuleCut turns a furniture module (type, dimensions, doors, drawers, shelves) into the panels to cut, the edges to band and the hardware and consumables to buy.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	dataDir := c.env.DataDir
	if dataDir == "" {
		dataDir = project.DefaultConfigDir()
	}
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", dataDir, "directory holding config, catalog, presets and profiles (env MODULECUT_DATA_DIR)")

	root.AddCommand(c.typesCommand())
	root.AddCommand(c.calcCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.profilesCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.backupCommand())

	return root
}
