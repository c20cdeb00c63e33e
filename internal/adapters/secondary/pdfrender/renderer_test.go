package pdfrender

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hazcam-nano/astra-intake-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRequest() domain.ReadingRequest {
	return domain.ReadingRequest{
		Question:     "Will I change careers this year?",
		Email:        "user@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		BirthDate:    "1990-04-12",
		BirthTime:    "08:45",
		Country:      "Portugal",
		City:         "Lisbon",
		Consent:      true,
		CaptchaToken: "token",
	}
}

func TestRender_ProducesPDFWithContent(t *testing.T) {
	r := New("Stellar Post", testLogger())

	out, err := r.Render(context.Background(), testRequest(), "Sample reading text")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, "%PDF-"))
	// Поток страницы без сжатия, текст виден как есть
	assert.Contains(t, doc, "Stellar Post")
	assert.Contains(t, doc, "Sample reading text")
	assert.Contains(t, doc, "Will I change careers this year?")
	assert.Contains(t, doc, "Jane Doe")
	assert.Contains(t, doc, "Lisbon, Portugal")
	assert.Contains(t, doc, "entertainment purposes only")
}

func TestRender_OptionalFields(t *testing.T) {
	r := New("Stellar Post", testLogger())

	req := testRequest()
	req.Timezone = "Europe/Lisbon"
	req.Notes = "Considering a move abroad"

	out, err := r.Render(context.Background(), req, "text")
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, "Europe/Lisbon")
	assert.Contains(t, doc, "Considering a move abroad")
}

func TestRender_DefaultBrand(t *testing.T) {
	r := New("", testLogger())

	out, err := r.Render(context.Background(), testRequest(), "text")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Your Brand")
}

func TestRender_LongReadingSpansPages(t *testing.T) {
	r := New("Stellar Post", testLogger())

	long := strings.Repeat("A long paragraph about planetary alignments and career houses. ", 200)
	out, err := r.Render(context.Background(), testRequest(), long)
	require.NoError(t, err)
	// Несколько страниц - несколько объектов /Page
	assert.Greater(t, strings.Count(string(out), "/Type /Page"), 2)
}
