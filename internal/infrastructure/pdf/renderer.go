// Package pdf renders payment guides as A4 PDF documents.
package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

const (
	margin = 20.0
	font   = "Helvetica"
)

type rgb struct{ r, g, b int }

var (
	dark  = rgb{10, 10, 12}
	gold  = rgb{184, 163, 105}
	gray  = rgb{120, 120, 120}
	light = rgb{150, 150, 150}
	white = rgb{255, 255, 255}
)

var instructions = []string{
	"1. Acesse o aplicativo do seu banco",
	"2. Selecione a opção PIX > Pagar com código",
	"3. Cole o código acima e confirme o pagamento",
	"4. Guarde o comprovante para registro",
}

const legalNotice = "Este documento é uma guia de pagamento emitida pelo sistema Super Cash. " +
	"O pagamento via PIX será confirmado automaticamente após a compensação bancária. " +
	"Em caso de dúvidas, entre em contato com nosso suporte."

// Renderer draws payment guides. The zero value is not usable; use NewRenderer.
type Renderer struct {
	loc      *time.Location
	compress bool
}

// NewRenderer returns a Renderer printing dates in loc (UTC when nil).
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{loc: loc, compress: true}
}

// FileName is the document name of a guide.
func FileName(guide domain.PaymentGuide) string {
	return "guia-pagamento-" + guide.ID + ".pdf"
}

// RenderToDir writes the guide document into dir and returns its path.
func (r *Renderer) RenderToDir(dir string, guide domain.PaymentGuide) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("pdf dir: %w", err)
	}
	path := filepath.Join(dir, FileName(guide))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.Render(f, guide); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Render writes the guide document to w. It depends only on the guide.
func (r *Renderer) Render(w io.Writer, guide domain.PaymentGuide) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Guia de Pagamento "+guide.ID, true)
	pdf.SetAuthor("Super Cash", true)
	pdf.SetCreationDate(guide.CreatedAt)
	pdf.SetModificationDate(guide.CreatedAt)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*margin

	fill := func(c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
	color := func(c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
	text := func(x, y float64, s string) { pdf.Text(x, y, tr(s)) }
	rightText := func(y float64, s string) {
		s = tr(s)
		pdf.Text(pageW-margin-pdf.GetStringWidth(s), y, s)
	}

	// Header
	fill(dark)
	pdf.Rect(0, 0, pageW, 50, "F")

	color(white)
	pdf.SetFont(font, "B", 24)
	text(margin, 25, "SUPER CASH")

	pdf.SetFont(font, "", 9)
	color(gold)
	text(margin, 33, "PRIVATE CREDIT")

	pdf.SetFont(font, "", 10)
	color(white)
	rightText(25, "GUIA DE PAGAMENTO")

	pdf.SetFont(font, "", 8)
	color(gray)
	rightText(33, "Nº "+guide.ID)

	fill(gold)
	pdf.Rect(0, 50, pageW, 1.5, "F")

	y := 65.0
	pdf.SetFont(font, "", 8)
	color(gray)
	text(margin, y, "Emitido em: "+IssueDate(guide.CreatedAt.In(r.loc)))
	y += 15

	// Client
	fill(rgb{245, 245, 245})
	pdf.Rect(margin, y, contentW, 35, "F")
	y += 8
	pdf.SetFont(font, "", 7)
	text(margin+5, y, "BENEFICIÁRIO")
	y += 7
	pdf.SetFont(font, "B", 14)
	color(dark)
	text(margin+5, y, cases.Upper(language.BrazilianPortuguese).String(guide.ClientName))
	y += 8
	pdf.SetFont(font, "", 9)
	color(gray)
	text(margin+5, y, "CPF: "+guide.ClientCPF)
	y += 20

	// Value
	fill(dark)
	pdf.Rect(margin, y, contentW, 40, "F")
	y += 12
	pdf.SetFont(font, "", 8)
	color(gold)
	text(margin+10, y, "VALOR DO PAGAMENTO")
	y += 15
	pdf.SetFont(font, "B", 28)
	color(white)
	text(margin+10, y, domain.FormatBRL(guide.Value))
	y += 25

	// PIX copy-and-paste code
	fill(rgb{250, 248, 240})
	pdf.SetDrawColor(gold.r, gold.g, gold.b)
	pdf.SetLineWidth(0.5)
	pdf.Rect(margin, y, contentW, 45, "FD")
	y += 10
	pdf.SetFont(font, "B", 8)
	color(gold)
	text(margin+10, y, "CÓDIGO PIX COPIA E COLA")
	y += 10
	pdf.SetFont(font, "", 9)
	color(dark)
	pixLines := wrap(pdf, tr, guide.PixCode, contentW-20)
	for i, line := range pixLines {
		pdf.Text(margin+10, y+float64(i)*5, line)
	}
	y += 30 + float64(max(len(pixLines)-1, 0))*5

	// Instructions
	pdf.SetFont(font, "", 8)
	color(gray)
	text(margin, y, "INSTRUÇÕES:")
	y += 6
	for _, line := range instructions {
		text(margin, y, line)
		y += 5
	}
	y += 10

	// Legal notice
	pdf.SetFont(font, "", 6)
	color(light)
	for i, line := range wrap(pdf, tr, legalNotice, contentW) {
		pdf.Text(margin, y+float64(i)*3, line)
	}

	// Footer
	footerY := pageH - 15
	fill(dark)
	pdf.Rect(0, footerY-5, pageW, 20, "F")
	pdf.SetFont(font, "", 7)
	color(gray)
	text(margin, footerY+3, "Super Cash Ltda. - Documento de uso interno")
	rightText(footerY+3, "ID: "+guide.ID)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render guide %s: %w", guide.ID, err)
	}
	return nil
}

// wrap translates s with tr and splits it into lines no wider than width.
// Long unbroken tokens such as PIX codes are cut at character boundaries.
// SplitText indexes the font width table by rune, so each single-byte code is
// carried as its own rune while splitting and turned back into a byte after.
func wrap(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) []string {
	if s == "" {
		return []string{""}
	}
	encoded := tr(s)
	runes := make([]rune, len(encoded))
	for i := 0; i < len(encoded); i++ {
		runes[i] = rune(encoded[i])
	}
	lines := pdf.SplitText(string(runes), width)
	for i, line := range lines {
		b := make([]byte, 0, len(line))
		for _, r := range line {
			b = append(b, byte(r))
		}
		lines[i] = string(b)
	}
	return lines
}

var _ ports.GuideRenderer = (*Renderer)(nil)
