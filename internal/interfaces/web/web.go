// Package web sirve la página de gestión de estoque embebida en el binario.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var static embed.FS

// Register monta la página en "/" y publica en /config.js la base de la API que usa app.js.
// Debe registrarse después de las rutas de la API.
func Register(app *fiber.App, apiPrefix string) error {
	root, err := fs.Sub(static, "static")
	if err != nil {
		return fmt.Errorf("web: assets: %w", err)
	}

	app.Get("/config.js", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/javascript; charset=utf-8")
		return c.SendString("window.API_BASE = " + strconv.Quote(apiPrefix) + ";\n")
	})
	app.Use("/", filesystem.New(filesystem.Config{
		Root:   http.FS(root),
		Index:  "index.html",
		Browse: false,
	}))
	return nil
}
