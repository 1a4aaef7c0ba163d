package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"score": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"percent": func(v float64) string {
		return fmt.Sprintf("%.0f%%", v)
	},
}).Parse(mustReadTemplate()))

func mustReadTemplate() string {
	content, err := templateFS.ReadFile("templates/report.html")
	if err != nil {
		panic(err)
	}
	return string(content)
}

// RenderHTML fills the report template with assembled project data.
func RenderHTML(data *Data) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return buf.String(), nil
}
