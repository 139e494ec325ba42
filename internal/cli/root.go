// Package cli implements the planes-info commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"planes_info/internal/catalog"
	"planes_info/internal/config"
	"planes_info/internal/logging"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// app carries the state shared by every command of one invocation
type app struct {
	configPath string
	format     string

	cfg       *config.Config
	logCloser io.Closer
	repo      *catalog.Repository
}

// newRootCmd builds the command tree over a
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "planes-info",
		Short:         "Browse the aircraft reference catalog",
		Long:          "Browse, search, compare and map a fixed catalog of commercial, military, private and helicopter aircraft.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (YAML)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "Output format: json or text")

	root.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newSearchCmd(a),
		newCompareCmd(a),
		newMapCmd(a),
		newFactsCmd(a),
		newTypesCmd(a),
		newFeaturedCmd(a),
		newExportCmd(a),
	)

	return root
}

// Execute runs the command tree against os.Args
func Execute() error {
	if err := run(&app{}, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// run executes one command and releases the log output whether or not it failed
func run(a *app, args []string, stdout, stderr io.Writer) (err error) {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer func() {
		if cerr := a.close(); err == nil {
			err = cerr
		}
	}()

	return root.Execute()
}

func (a *app) init() error {
	if a.format != formatJSON && a.format != formatText {
		return fmt.Errorf("invalid format %q (must be json or text)", a.format)
	}

	if a.configPath != "" {
		os.Setenv(config.ConfigPathEnv, a.configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg
	a.logCloser = logging.Init(cfg.Log)

	return nil
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// repository loads the catalog on first use
func (a *app) repository() (*catalog.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}

	repo, err := loadCatalog(a.cfg)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	return repo, nil
}

func (a *app) jsonOutput() bool {
	return a.format == formatJSON
}
