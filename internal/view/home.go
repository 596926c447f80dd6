// Package view holds the server-rendered HTML components.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomePage is the plain landing page served at the site root.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Hello World")
		return err
	})
}
