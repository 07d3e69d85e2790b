package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/supercash/backoffice/internal/core/domain"
)

func testGuide() domain.PaymentGuide {
	return domain.PaymentGuide{
		ID:         "GUI-1760000000000-ab12cd34",
		ContractID: "CTR-1",
		ClientName: "Maria Souza",
		ClientCPF:  "529.982.247-25",
		Value:      decimal.RequireFromString("1100"),
		PixCode:    strings.Repeat("SUPERCASH1760000000000ABC123", 4),
		Status:     domain.GuidePending,
		CreatedAt:  time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC),
	}
}

func TestIssueDate(t *testing.T) {
	got := IssueDate(time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC))
	if got != "07 de março de 2026, às 09:05" {
		t.Errorf("got %q", got)
	}
}

func TestRender_Content(t *testing.T) {
	r := NewRenderer(time.FixedZone("BRT", -3*3600))
	r.compress = false

	var buf bytes.Buffer
	if err := r.Render(&buf, testGuide()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("not a pdf: %q", out[:min(len(out), 16)])
	}
	for _, want := range []string{"SUPER CASH", "GUIA DE PAGAMENTO", "MARIA SOUZA", "R$ 1.100,00", "ID: GUI-1760000000000-ab12cd34"} {
		if !strings.Contains(out, want) {
			t.Errorf("document is missing %q", want)
		}
	}
	if !strings.Contains(out, "04 de maio de 2026") {
		t.Error("issue date not rendered in local time")
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := NewRenderer(nil)
	var a, b bytes.Buffer
	if err := r.Render(&a, testGuide()); err != nil {
		t.Fatal(err)
	}
	if err := r.Render(&b, testGuide()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("same guide rendered differently")
	}
}

func TestRenderToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "guias")
	path, err := NewRenderer(nil).RenderToDir(dir, testGuide())
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "guia-pagamento-GUI-1760000000000-ab12cd34.pdf" {
		t.Errorf("unexpected file name %s", path)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("file not written: %v", err)
	}
}

func TestRender_NonASCIIText(t *testing.T) {
	g := testGuide()
	g.ClientName = "João Łukasz Conceição"
	g.PixCode = "PIX-ÇÃO-€-" + strings.Repeat("Ł", 120)

	var buf bytes.Buffer
	if err := NewRenderer(nil).Render(&buf, g); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty document")
	}
}

func TestWrap_TranslatesAndFits(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(font, "", 6)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lines := wrap(pdf, tr, legalNotice, 80)
	if len(lines) < 2 {
		t.Fatalf("expected the notice to wrap, got %d line(s)", len(lines))
	}
	for _, line := range lines {
		if w := pdf.GetStringWidth(line); w > 80 {
			t.Errorf("line %q is %.1fmm wide", line, w)
		}
	}
	if got := strings.Join(lines, " "); got != tr(legalNotice) {
		t.Errorf("wrapped text differs from the translated notice:\n%q\n%q", got, tr(legalNotice))
	}
	if !strings.Contains(tr(legalNotice), "\xe9") {
		t.Error("notice was not translated to the font encoding")
	}
}

func TestWrap_Empty(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(font, "", 9)
	if got := wrap(pdf, pdf.UnicodeTranslatorFromDescriptor(""), "", 50); len(got) != 1 || got[0] != "" {
		t.Errorf("got %q", got)
	}
}
