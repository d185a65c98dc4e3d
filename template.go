package sunbreeze

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

//go:embed templates
var builtinTemplates embed.FS

// TemplateSet loads and caches html/template files. Template names resolve
// against the user-supplied directory first and the module's built-in
// templates second, mirroring a loader chain. Parsed templates are cached;
// the cache is safe for concurrent use.
type TemplateSet struct {
	mu    sync.RWMutex
	cache map[string]*template.Template

	dir     string
	builtin fs.FS
}

// NewTemplateSet returns a template set resolving names against dir before
// the built-in templates. An empty dir serves built-ins only.
func NewTemplateSet(dir string) *TemplateSet {
	builtin, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		// The embedded tree always contains templates/.
		panic(err)
	}
	return &TemplateSet{
		cache:   make(map[string]*template.Template),
		dir:     dir,
		builtin: builtin,
	}
}

// Render executes the named template with ctx and returns the output bytes.
func (t *TemplateSet) Render(name string, ctx any) ([]byte, error) {
	tmpl, err := t.load(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (t *TemplateSet) load(name string) (*template.Template, error) {
	t.mu.RLock()
	tmpl, ok := t.cache[name]
	t.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	src, err := t.read(name)
	if err != nil {
		return nil, err
	}

	tmpl, err = template.New(name).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	t.mu.Lock()
	t.cache[name] = tmpl
	t.mu.Unlock()

	return tmpl, nil
}

// read resolves a template name: user directory first, built-ins second.
func (t *TemplateSet) read(name string) ([]byte, error) {
	if t.dir != "" {
		src, err := os.ReadFile(filepath.Join(t.dir, filepath.Clean(name)))
		if err == nil {
			return src, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
	}

	src, err := fs.ReadFile(t.builtin, name)
	if err != nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	return src, nil
}
