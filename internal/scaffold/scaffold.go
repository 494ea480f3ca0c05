package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/leetkit-labs/leetkit/internal/layout"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Result holds the outcome of a scaffold build. Dirs and Files record paths
// relative to Root in creation order.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

type topicData struct {
	Topic string
}

type difficultyData struct {
	Difficulty string
}

type utilityData struct {
	Filename string
}

// Build creates the practice scaffold under root: the three difficulty
// folders, one folder per topic with a placeholder solutions file, utility
// script stubs, and a README.md.
//
// Directory creation is idempotent; re-running never fails on an existing
// directory. File writes are not: every run rewrites all placeholder files,
// discarding any edits made to them. The first filesystem error aborts the
// remaining steps and is returned unmodified; already-created entries are
// left in place.
func Build(root string, lay *layout.Layout) (*Result, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	if err := os.MkdirAll(absRoot, 0o755); err != nil {
		return nil, fmt.Errorf("creating root directory %s: %w", absRoot, err)
	}

	r := &Result{Root: absRoot}

	for _, d := range layout.Difficulties() {
		if err := r.ensureDir(d); err != nil {
			return nil, err
		}
	}
	if err := r.ensureDir("Topics"); err != nil {
		return nil, err
	}

	for _, t := range lay.Topics {
		dir := filepath.Join("Topics", t)
		if err := r.ensureDir(dir); err != nil {
			return nil, err
		}
		file := filepath.Join(dir, t+"_example.txt")
		if err := r.writeTemplate(file, "topic.txt.tmpl", topicData{Topic: t}); err != nil {
			return nil, err
		}
	}

	for _, d := range layout.Difficulties() {
		file := filepath.Join(d, d+"_example.txt")
		if err := r.writeTemplate(file, "difficulty.txt.tmpl", difficultyData{Difficulty: d}); err != nil {
			return nil, err
		}
	}

	if err := r.ensureDir("Utilities"); err != nil {
		return nil, err
	}
	for _, u := range lay.Utilities {
		file := filepath.Join("Utilities", u)
		if err := r.writeTemplate(file, "utility.txt.tmpl", utilityData{Filename: u}); err != nil {
			return nil, err
		}
	}

	if err := r.writeTemplate("README.md", "readme.md.tmpl", nil); err != nil {
		return nil, err
	}

	return r, nil
}

// ensureDir creates a directory under Root if it does not already exist.
func (r *Result) ensureDir(rel string) error {
	if err := os.MkdirAll(filepath.Join(r.Root, rel), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", rel, err)
	}
	r.Dirs = append(r.Dirs, rel)
	return nil
}

// writeTemplate renders a template and writes it under Root, overwriting any
// existing file.
func (r *Result) writeTemplate(rel, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(r.Root, rel), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	r.Files = append(r.Files, rel)
	return nil
}
