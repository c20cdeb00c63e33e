package pdfrender

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"
	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

const disclaimerText = "This reading is provided for guidance and entertainment purposes only. " +
	"It is not medical, legal or financial advice."

// Renderer собирает PDF-документ с разбором в памяти
type Renderer struct {
	brand string
	log   *slog.Logger
}

// New создаёт новый рендерер документов
func New(brand string, log *slog.Logger) *Renderer {
	if brand == "" {
		brand = "Your Brand"
	}

	return &Renderer{
		brand: brand,
		log:   log,
	}
}

// Render собирает одностраничный (или больше, если текст длинный)
// A4-документ: шапка бренда, поля запроса, текст разбора, дисклеймер.
// Весь буфер собирается синхронно до возврата.
func (r *Renderer) Render(ctx context.Context, req domain.ReadingRequest, readingText string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(r.brand+" Reading", true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// Шапка бренда
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(r.brand), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Personal Astrology Reading", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Поля запроса
	r.field(pdf, tr, "Question", req.Question)
	r.field(pdf, tr, "Name", req.FullName())
	r.field(pdf, tr, "Born", req.BirthDate+" at "+req.BirthTime)
	r.field(pdf, tr, "Birthplace", req.BirthPlace())
	if req.Timezone != "" {
		r.field(pdf, tr, "Timezone", req.Timezone)
	}
	if req.Notes != "" {
		r.field(pdf, tr, "Notes", req.Notes)
	}
	pdf.Ln(6)

	// Текст разбора
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5.5, tr(readingText), "", "L", false)
	pdf.Ln(8)

	// Дисклеймер мелким серым
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(0, 4, tr(disclaimerText), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.log.Debug("pdf assembly failed",
			"error", err,
		)
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	r.log.Debug("pdf document assembled",
		"size", buf.Len(),
	)

	return buf.Bytes(), nil
}

// field печатает строку "метка: значение"
func (r *Renderer) field(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(32, 6, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}
