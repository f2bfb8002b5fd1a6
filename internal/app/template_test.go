package app

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

// templateTestFS returns a filesystem with a layout, a partial, and pages
// that exercise block overrides and the helper functions.
func templateTestFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{ define "base" }}[{{ block "title" . }}default{{ end }}]{{ template "nav" . }}{{ block "content" . }}{{ end }}{{ end }}`),
		},
		"templates/partials/nav.html": &fstest.MapFile{
			Data: []byte(`{{ define "nav" }}<nav/>{{ end }}`),
		},
		"templates/album/list.html": &fstest.MapFile{
			Data: []byte(`{{ template "base" . }}{{ define "title" }}Albums{{ end }}{{ define "content" }}{{ range .Names }}{{ . }};{{ end }}{{ end }}`),
		},
		"templates/album/detail.html": &fstest.MapFile{
			Data: []byte(`{{ template "base" . }}{{ define "content" }}released {{ formatDay .ReleaseDate }}{{ end }}`),
		},
	}
}

func renderTemplate(t *testing.T, r *TemplateRenderer, name string, data any) string {
	t.Helper()
	w := httptest.NewRecorder()
	if err := r.Instance(name, data).Render(w); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return w.Body.String()
}

func TestTemplateRenderer_LayoutAndPartial(t *testing.T) {
	r, err := NewTemplateRenderer(templateTestFS(), false)
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	body := renderTemplate(t, r, "album/list.html", map[string]any{
		"Names": []string{"Discovery", "Homework"},
	})

	if !strings.Contains(body, "[Albums]") {
		t.Errorf("page must override the title block, got %q", body)
	}
	if !strings.Contains(body, "<nav/>") {
		t.Errorf("partial must be rendered, got %q", body)
	}
	if !strings.Contains(body, "Discovery;Homework;") {
		t.Errorf("content block missing data, got %q", body)
	}
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer(templateTestFS(), false)
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	w := httptest.NewRecorder()
	if err := r.Instance("nope.html", nil).Render(w); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

// Debug mode re-reads the filesystem on every request.
func TestTemplateRenderer_DebugHotReload(t *testing.T) {
	fsys := templateTestFS()
	r, err := NewTemplateRenderer(fsys, true)
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	before := renderTemplate(t, r, "album/list.html", map[string]any{"Names": []string{"A"}})
	if !strings.Contains(before, "A;") {
		t.Fatalf("unexpected initial render: %q", before)
	}

	fsys["templates/album/list.html"] = &fstest.MapFile{
		Data: []byte(`{{ template "base" . }}{{ define "content" }}changed{{ end }}`),
	}

	after := renderTemplate(t, r, "album/list.html", nil)
	if !strings.Contains(after, "changed") {
		t.Errorf("debug mode must pick up the edited template, got %q", after)
	}
}

func TestFormatDay(t *testing.T) {
	r, err := NewTemplateRenderer(templateTestFS(), false)
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	t.Run("with date", func(t *testing.T) {
		d := time.Date(2001, 3, 12, 0, 0, 0, 0, time.UTC)
		body := renderTemplate(t, r, "album/detail.html", map[string]any{"ReleaseDate": &d})
		if !strings.Contains(body, "released 2001-03-12") {
			t.Errorf("got %q", body)
		}
	})

	t.Run("nil date renders empty", func(t *testing.T) {
		body := renderTemplate(t, r, "album/detail.html", map[string]any{"ReleaseDate": (*time.Time)(nil)})
		if !strings.Contains(body, "released ") || strings.Contains(body, "0001") {
			t.Errorf("nil date must render empty, got %q", body)
		}
	})
}

func TestTemplateFuncMap_Helpers(t *testing.T) {
	funcs := templateFuncMap()

	if got := funcs["add"].(func(int, int) int)(2, 3); got != 5 {
		t.Errorf("add(2,3) = %d", got)
	}
	if got := funcs["sub"].(func(int, int) int)(3, 2); got != 1 {
		t.Errorf("sub(3,2) = %d", got)
	}

	seq := funcs["seq"].(func(int, int) []int)
	if got := seq(1, 3); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("seq(1,3) = %v", got)
	}
	if got := seq(3, 1); got != nil {
		t.Errorf("seq(3,1) = %v, want nil", got)
	}
}
