package view

import (
	"bytes"
	"html/template"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func execute(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		t.Fatalf("failed to execute %s: %v", name, err)
	}
	return buf.String()
}

func matchSnapshot(t *testing.T, html string) {
	t.Helper()
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}

func TestViewTemplate(t *testing.T) {
	out := execute(t, Page, map[string]any{
		"page":    "home",
		"pageURL": PageURL("home"),
		"content": template.HTML("<h1>Hello</h1>"),
	})

	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Fatalf("expected rendered markup to be inserted unescaped, got %s", out)
	}
	if !strings.Contains(out, `href="/home/edit"`) {
		t.Fatalf("expected edit link, got %s", out)
	}
	matchSnapshot(t, out)
}

func TestViewTemplateShowsFlash(t *testing.T) {
	out := execute(t, Page, map[string]any{
		"page":    "home",
		"pageURL": PageURL("home"),
		"content": template.HTML("<p>x</p>"),
		"flash":   "Page saved.",
	})
	if !strings.Contains(out, `<p class="flash">Page saved.</p>`) {
		t.Fatalf("expected flash message, got %s", out)
	}
}

func TestCreateTemplate(t *testing.T) {
	out := execute(t, Create, map[string]any{
		"page":    "new page",
		"pageURL": PageURL("new page"),
		"content": "",
	})

	if !strings.Contains(out, `action="/new%20page"`) {
		t.Fatalf("expected escaped form action, got %s", out)
	}
	if !strings.Contains(out, `<textarea name="content"></textarea>`) {
		t.Fatalf("expected empty textarea, got %s", out)
	}
	matchSnapshot(t, out)
}

func TestEditTemplateEscapesRawContent(t *testing.T) {
	out := execute(t, Edit, map[string]any{
		"page":    "<b>x</b>",
		"pageURL": PageURL("<b>x</b>"),
		"content": "</textarea><script>alert(1)</script> & = Hello =",
	})

	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>x</b>") {
		t.Fatalf("expected page name and content to be escaped, got %s", out)
	}
	if !strings.Contains(out, "&lt;/textarea&gt;&lt;script&gt;alert(1)&lt;/script&gt; &amp; = Hello =") {
		t.Fatalf("expected escaped raw content, got %s", out)
	}
	if !strings.Contains(out, "<title>&lt;b&gt;x&lt;/b&gt;</title>") {
		t.Fatalf("expected escaped title, got %s", out)
	}
	matchSnapshot(t, out)
}

func TestErrorTemplate(t *testing.T) {
	out := execute(t, Error, map[string]any{
		"page":    "Error",
		"status":  502,
		"message": "The markup engine could not render this page.",
	})
	if !strings.Contains(out, "502: The markup engine could not render this page.") {
		t.Fatalf("expected status and message, got %s", out)
	}
}

func TestStaticServesStylesheet(t *testing.T) {
	f, err := Static().Open("/css/styles.css")
	if err != nil {
		t.Fatalf("failed to open stylesheet: %v", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("failed to read stylesheet: %v", err)
	}
	if !strings.Contains(string(body), "#page") {
		t.Fatalf("unexpected stylesheet content: %s", body)
	}
}

func TestPageURL(t *testing.T) {
	tests := map[string]string{
		"home":      "/home",
		"two words": "/two%20words",
		"a?b#c":     "/a%3Fb%23c",
		"café":      "/caf%C3%A9",
	}
	for name, want := range tests {
		if got := PageURL(name); got != want {
			t.Fatalf("PageURL(%q) = %q, want %q", name, got, want)
		}
	}
}
