package handler

import (
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*
var templatesFS embed.FS

// NewEngine builds the html/template engine over the embedded views.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(templatesFS), ".html")
	engine.Directory = "/templates"

	engine.AddFunc("money", func(cents int64) string {
		return fmt.Sprintf("$%.2f", float64(cents)/100)
	})
	engine.AddFunc("price", func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	})
	engine.AddFunc("shortDate", func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	})

	return engine
}
