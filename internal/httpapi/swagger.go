//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "aihostd/docs"
)

// MountSwagger serves the generated OpenAPI UI under /swagger/. Regenerate
// docs with `swag init -g cmd/aihostd/docs.go` before building with
// -tags=swagger.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
