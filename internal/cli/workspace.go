package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eroom8/Java-document-sorter/internal/domain"
	"github.com/eroom8/Java-document-sorter/internal/infra/config"
	"github.com/eroom8/Java-document-sorter/internal/infra/logger"
	"github.com/eroom8/Java-document-sorter/internal/infra/reportstore"
	"github.com/eroom8/Java-document-sorter/internal/infra/textstore"
	"github.com/eroom8/Java-document-sorter/internal/infra/workspacefinder"
	"github.com/eroom8/Java-document-sorter/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	store   ports.RecordStore
	cleanup func() error
}

// loadWorkspace resolves configuration: --config if given, else recsort.yaml found
// upward from the working directory, else built-in defaults rooted at the
// working directory.
func loadWorkspace(g *globalFlags) (*workspaceCtx, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root := wd
	cfg := domain.DefaultConfig()

	switch {
	case strings.TrimSpace(g.configPath) != "":
		p, err := filepath.Abs(g.configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if cfg, err = config.Load(p); err != nil {
			return nil, err
		}
		root = filepath.Dir(p)
	default:
		var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
		if found, ferr := locator.FindRoot(wd); ferr == nil {
			if cfg, err = workspacefinder.LoadConfig(found); err != nil {
				return nil, err
			}
			root = found
		}
	}

	ws := &workspaceCtx{
		root:    root,
		cfg:     cfg,
		store:   textstore.NewStore(),
		cleanup: func() error { return nil },
	}

	if g.debug || cfg.Logging.Enabled {
		if cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: g.debug}); lerr == nil {
			ws.cleanup = cleanup
		}
	}
	logger.L().Debug("workspace.loaded", "root", root, "config", g.configPath)

	return ws, nil
}

func (ws *workspaceCtx) close() {
	_ = ws.cleanup()
}

func (ws *workspaceCtx) reportStore() ports.ReportStore {
	return reportstore.NewJSONStore(ws.root, ws.cfg, reportstore.WithIndex(true))
}

// configPath resolves a path taken from recsort.yaml against the workspace root.
func (ws *workspaceCtx) configPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(ws.root, p)
}

// stringFlag returns the flag value when the user set it, else fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
