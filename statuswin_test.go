package statuswin_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	statuswin "github.com/roleplaykit/go-statuswin"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/testsupport"
)

func TestGenerateHTMLFromDocument(t *testing.T) {
	doc := testsupport.SampleDocument()

	out, err := statuswin.GenerateHTMLFromDocument(context.Background(), *doc,
		testsupport.SampleBindings(), "preview")
	if err != nil {
		t.Fatalf("GenerateHTMLFromDocument() error = %v", err)
	}
	if !strings.Contains(string(out), "Apprentice Aria") {
		t.Error("preview output missing character header")
	}
}

func TestGenerateHTMLFromSource(t *testing.T) {
	src := config.SourceFromBytes("sample.json", testsupport.SampleJSON(t))

	out, err := statuswin.GenerateHTML(context.Background(), src, nil, "export")
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(string(out), `id="statuswin-config"`) {
		t.Error("export output missing embedded configuration")
	}
}

func TestEmbeddedTemplatesContainPage(t *testing.T) {
	if _, err := fs.ReadFile(statuswin.EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("page template not embedded: %v", err)
	}
}
