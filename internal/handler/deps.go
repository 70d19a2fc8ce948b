package handler

import (
	"actionapi/internal/app/document"
	"actionapi/internal/configs"
)

// AppDeps bundles the dependencies shared by all HTTP handlers.
type AppDeps struct {
	Config *configs.AppConfig
	Store  *document.Store
}
