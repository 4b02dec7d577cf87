package api

import (
	"net/http"

	"github.com/JaimeStill/loom/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Workflows.Handler().Routes(),
		domain.Runs.Handler().Routes(),
		domain.Health.Handler().Routes(),
	)
}
