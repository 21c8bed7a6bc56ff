package workspacefinder

import (
	"path/filepath"

	"github.com/eroom8/Java-document-sorter/internal/domain"
	"github.com/eroom8/Java-document-sorter/internal/infra/config"
)

// LoadConfig loads recsort.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return config.Load(filepath.Join(root, ConfigFileName))
}
