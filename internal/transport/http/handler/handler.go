package handler

// Handler contains the informational HTTP handlers and their dependencies.
type Handler struct {
	appName string
	version string
}

// New creates a new handler.
func New(appName, version string) *Handler {
	return &Handler{
		appName: appName,
		version: version,
	}
}
