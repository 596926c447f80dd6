package handler

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/msomdec/storefront/internal/view"
)

// HandleHome renders the landing page.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	templ.Handler(view.HomePage()).ServeHTTP(w, r)
}

// HandleNotFound answers every unmatched route.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeFail(w, http.StatusNotFound, fmt.Sprintf("Can't find %s on this server", r.URL.Path))
}
