package app

import (
	"path/filepath"

	"github.com/kyaoi/mdstyle/internal/article"
	"github.com/kyaoi/mdstyle/internal/catalog"
	"github.com/kyaoi/mdstyle/internal/logger"
	"github.com/kyaoi/mdstyle/internal/ui"
)

// LoadInitialState reads the catalog and the article and prepares the UI
// state. An empty target selects the built-in sample article.
func LoadInitialState(target, catalogPath string, log *logger.Logger) (ui.State, error) {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return ui.State{}, err
	}

	doc := article.Sample()
	if target != "" {
		absTarget, err := filepath.Abs(target)
		if err != nil {
			return ui.State{}, err
		}
		doc, err = article.Load(absTarget)
		if err != nil {
			return ui.State{}, err
		}
	}

	log.WithFields(map[string]any{
		"article": doc.Title,
		"path":    doc.Path,
		"catalog": catalogPath,
	}).Info("initial state loaded")

	return ui.State{
		Article: doc,
		Catalog: cat,
		Logger:  log,
	}, nil
}
