package readingController

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

// Form сырое тело запроса на разбор до валидации
type Form struct {
	Question     string `json:"q"`
	Email        string `json:"email"`
	FirstName    string `json:"first"`
	LastName     string `json:"last"`
	BirthDate    string `json:"dob"`
	BirthTime    string `json:"tob"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Timezone     string `json:"tz"`
	Notes        string `json:"notes"`
	Consent      *bool  `json:"consent"`
	CaptchaToken string `json:"hcaptchaToken"`
}

// ParseBody чистая функция разбора тела запроса.
// Порядок: заявленный JSON (ошибка парсинга - это ошибка клиента),
// затем form-encoded, затем best-effort JSON, иначе пустая запись.
func ParseBody(contentType string, raw []byte) (*Form, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	switch {
	case strings.Contains(mediaType, "application/json"):
		var form Form
		if err := json.Unmarshal(raw, &form); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
		}
		return &form, nil

	case strings.Contains(mediaType, "application/x-www-form-urlencoded"):
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return &Form{}, nil
		}
		return formFromValues(values), nil

	default:
		var form Form
		if err := json.Unmarshal(raw, &form); err != nil {
			return &Form{}, nil
		}
		return &form, nil
	}
}

// formFromValues маппит form-encoded параметры в Form
func formFromValues(values url.Values) *Form {
	form := &Form{
		Question:     values.Get("q"),
		Email:        values.Get("email"),
		FirstName:    values.Get("first"),
		LastName:     values.Get("last"),
		BirthDate:    values.Get("dob"),
		BirthTime:    values.Get("tob"),
		Country:      values.Get("country"),
		City:         values.Get("city"),
		Timezone:     values.Get("tz"),
		Notes:        values.Get("notes"),
		CaptchaToken: values.Get("hcaptchaToken"),
	}

	if values.Has("consent") {
		v := values.Get("consent")
		consent := v != "false" && v != "0"
		form.Consent = &consent
	}

	return form
}

// ToDomain превращает форму в доменную сущность с дефолтами
// для необязательных полей (tz, notes пустые, consent=true)
func (f *Form) ToDomain() domain.ReadingRequest {
	consent := true
	if f.Consent != nil {
		consent = *f.Consent
	}

	return domain.ReadingRequest{
		Question:     strings.TrimSpace(f.Question),
		Email:        strings.TrimSpace(f.Email),
		FirstName:    strings.TrimSpace(f.FirstName),
		LastName:     strings.TrimSpace(f.LastName),
		BirthDate:    strings.TrimSpace(f.BirthDate),
		BirthTime:    strings.TrimSpace(f.BirthTime),
		Country:      strings.TrimSpace(f.Country),
		City:         strings.TrimSpace(f.City),
		Timezone:     strings.TrimSpace(f.Timezone),
		Notes:        strings.TrimSpace(f.Notes),
		Consent:      consent,
		CaptchaToken: strings.TrimSpace(f.CaptchaToken),
	}
}
