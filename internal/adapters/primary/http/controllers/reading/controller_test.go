package readingController

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	server "github.com/hazcam-nano/astra-intake-api/internal/adapters/primary/http"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/pdfrender"
	"github.com/hazcam-nano/astra-intake-api/internal/domain"
	"github.com/hazcam-nano/astra-intake-api/internal/usecases/reading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCaptcha struct {
	calls int
	ok    bool
	err   error
}

func (s *stubCaptcha) Verify(ctx context.Context, token string) (bool, error) {
	s.calls++
	return s.ok, s.err
}

type stubGenerator struct {
	calls int
	text  string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubMailer struct {
	calls int
	last  domain.OutboundEmail
	err   error
}

func (s *stubMailer) Send(ctx context.Context, mail domain.OutboundEmail) error {
	s.calls++
	s.last = mail
	return s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type env struct {
	captcha   *stubCaptcha
	generator *stubGenerator
	mailer    *stubMailer
	handler   http.Handler
}

// newEnv собирает полный HTTP-стек с реальным usecase и PDF-рендерером,
// но со стабами внешних провайдеров
func newEnv(t *testing.T) *env {
	t.Helper()

	log := testLogger()
	e := &env{
		captcha:   &stubCaptcha{ok: true},
		generator: &stubGenerator{text: "Sample reading text"},
		mailer:    &stubMailer{},
	}

	readingService := reading.New(
		e.captcha,
		e.generator,
		pdfrender.New("Your Brand", log),
		e.mailer,
		nil,
		&reading.Config{Brand: "Your Brand"},
		log,
	)

	ctrl := New(readingService, log, "")
	srv := server.NewHTTPServer(&server.Config{Port: "0"}, log, ctrl)
	e.handler = srv.Handler

	return e
}

const validJSONBody = `{
	"q": "Will I change careers this year?",
	"email": "user@example.com",
	"first": "Jane",
	"last": "Doe",
	"dob": "1990-04-12",
	"tob": "08:45",
	"country": "Portugal",
	"city": "Lisbon",
	"hcaptchaToken": "token-123"
}`

func doRequest(e *env, method, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/reading", reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestOptions_ReturnsNoContentWithCORS(t *testing.T) {
	e := newEnv(t)

	w := doRequest(e, http.MethodOptions, "", map[string]string{"Origin": "https://shop.example"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Zero(t, e.captcha.calls)
}

func TestGet_ReachabilityWithoutCollaborators(t *testing.T) {
	e := newEnv(t)

	w := doRequest(e, http.MethodGet, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["ok"])
	assert.NotEmpty(t, envelope["message"])
	assert.Zero(t, e.captcha.calls)
	assert.Zero(t, e.generator.calls)
	assert.Zero(t, e.mailer.calls)
}

func TestUnsupportedMethod(t *testing.T) {
	e := newEnv(t)

	w := doRequest(e, http.MethodPut, "{}", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["ok"])
	assert.Equal(t, "Method not allowed", envelope["error"])
}

func TestCORSHeaderPresentOnErrors(t *testing.T) {
	e := newEnv(t)

	w := doRequest(e, http.MethodPost, "{}", map[string]string{
		"Content-Type": "application/json",
		"Origin":       "https://shop.example",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPost_MissingFieldGenericMessage(t *testing.T) {
	required := []string{"q", "email", "first", "last", "dob", "tob", "country", "city"}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			e := newEnv(t)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(validJSONBody), &body))
			delete(body, field)
			raw, err := json.Marshal(body)
			require.NoError(t, err)

			w := doRequest(e, http.MethodPost, string(raw), map[string]string{"Content-Type": "application/json"})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			envelope := decodeEnvelope(t, w)
			assert.Equal(t, false, envelope["ok"])
			assert.Equal(t, "Missing required fields.", envelope["error"])
			assert.Zero(t, e.generator.calls)
			assert.Zero(t, e.mailer.calls)
		})
	}
}

func TestPost_MissingCaptchaSpecificMessage(t *testing.T) {
	e := newEnv(t)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validJSONBody), &body))
	delete(body, "hcaptchaToken")
	raw, _ := json.Marshal(body)

	w := doRequest(e, http.MethodPost, string(raw), map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Captcha token is required.", envelope["error"])
	assert.NotEqual(t, "Missing required fields.", envelope["error"])
}

func TestPost_MalformedJSONBody(t *testing.T) {
	e := newEnv(t)

	w := doRequest(e, http.MethodPost, `{"q": broken`, map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Malformed request body.", envelope["error"])
}

func TestPost_CaptchaRejected(t *testing.T) {
	e := newEnv(t)
	e.captcha.ok = false

	w := doRequest(e, http.MethodPost, validJSONBody, map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, e.generator.calls)
	assert.Zero(t, e.mailer.calls)
}

func TestPost_GenerationFailureIs502(t *testing.T) {
	e := newEnv(t)
	e.generator.err = assert.AnError

	w := doRequest(e, http.MethodPost, validJSONBody, map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Zero(t, e.mailer.calls)
}

func TestPost_EndToEnd(t *testing.T) {
	e := newEnv(t)

	w := doRequest(e, http.MethodPost, validJSONBody, map[string]string{"Content-Type": "application/json"})

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["ok"])
	assert.Equal(t, "Your reading is being sent to your email.", envelope["message"])

	require.Equal(t, 1, e.mailer.calls)
	assert.Equal(t, "user@example.com", e.mailer.last.To)
	assert.Equal(t, "reading.pdf", e.mailer.last.AttachmentName)

	// Документ собран без сжатия, текст разбора виден в потоке страницы
	pdfBytes := e.mailer.last.Attachment
	require.NotEmpty(t, pdfBytes)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF-"))
	assert.Contains(t, string(pdfBytes), "Sample reading text")
}

func TestPost_FormEncodedBody(t *testing.T) {
	e := newEnv(t)

	body := "q=Hello&email=user%40example.com&first=Jane&last=Doe&dob=1990-04-12&tob=08%3A45&country=PT&city=Lisbon&hcaptchaToken=tok"
	w := doRequest(e, http.MethodPost, body, map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, e.mailer.calls)
}
