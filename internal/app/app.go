package app

import (
	"calckit/internal/web"
)

// NewServer builds the calcweb site from the wired services and config.
func NewServer(w *Wire) (*web.Server, error) {
	return web.New(w.Calculators,
		web.WithHistory(w.History),
		web.WithLogger(w.Logger),
		web.WithBaseURL(w.Config.BaseURL),
		web.WithPrettyHTML(w.Config.Web.Pretty),
		web.WithCompression(w.Config.Web.Compress),
	)
}
