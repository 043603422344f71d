// Package web embeds and serves the shop dashboard and audit pages. The
// frontend is plain HTML/JS talking to the JSON API — compiled into the
// binary so the server ships as a single artifact.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

func page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := staticFS.ReadFile("static/" + name)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}

// Register mounts the embedded frontend: the dashboard at / and the sales
// ledger at /audit, with shared assets under /static.
func Register(r *gin.Engine) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(sub))
	r.GET("/", page("index.html"))
	r.GET("/audit", page("audit.html"))
}
