package rest

import (
	"html/template"
	"log/slog"
	"net/http"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} - Kehadiran</title>
</head>
<body>
  <div id="root" data-page="{{.Page}}"></div>
  <script src="/assets/app.js" defer></script>
</body>
</html>
`))

type shellData struct {
	Title string
	Page  string
}

// PageHandler serves the application shell for page navigations. The guard
// middleware has already decided the caller may see the page; the shell
// itself is identical for every page and the client picks the view from the
// data-page attribute.
type PageHandler struct {
	logger *slog.Logger
}

func NewPageHandler(logger *slog.Logger) *PageHandler {
	return &PageHandler{logger: logger}
}

func (h *PageHandler) Serve(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := shellTemplate.Execute(w, shellData{Title: title, Page: page}); err != nil {
			h.logger.Error("failed to render page shell", "page", page, "error", err)
		}
	}
}
