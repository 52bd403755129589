package ui

import (
	"github.com/kyaoi/mdstyle/internal/article"
	"github.com/kyaoi/mdstyle/internal/catalog"
	"github.com/kyaoi/mdstyle/internal/logger"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Article article.Article
	Catalog catalog.Catalog
	Logger  *logger.Logger
}
