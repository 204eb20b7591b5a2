// Package dashboard renders Grafana dashboards for stored analyses and engine metrics.
package dashboard

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.json.tmpl
var templates embed.FS

var templateFiles = []string{
	"impact-analyses.json.tmpl",
	"impact-metrics.json.tmpl",
}

// Params are the values substituted into the templates besides the
// datasource UIDs, which come from the environment.
type Params struct {
	Table string
}

// Render parses dashboard templates and writes rendered dashboards to outDir.
func Render(outDir string, p Params) error {
	if p.Table == "" {
		p.Table = "impact_analyses"
	}
	funcMap := template.FuncMap{
		"env": func(key string) (string, error) {
			v := os.Getenv(key)
			if v == "" {
				return "", fmt.Errorf("environment variable %s not set", key)
			}
			return v, nil
		},
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, name := range templateFiles {
		t, err := template.New(name).Funcs(funcMap).ParseFS(templates, "templates/"+name)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outDir, strings.TrimSuffix(name, ".tmpl"))
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := t.Execute(f, p); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
