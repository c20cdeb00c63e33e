package domain

import "strings"

// ReadingRequest запрос пользователя на персональный астрологический разбор.
// Живёт только в рамках одного HTTP-запроса, никуда не сохраняется.
type ReadingRequest struct {
	Question     string `json:"q"`
	Email        string `json:"email"`
	FirstName    string `json:"first"`
	LastName     string `json:"last"`
	BirthDate    string `json:"dob"`
	BirthTime    string `json:"tob"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Timezone     string `json:"tz,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Consent      bool   `json:"consent"`
	CaptchaToken string `json:"hcaptchaToken"`
}

// Validate проверяет обязательные поля запроса.
// Клиенту не сообщаем, какое именно поле отсутствует.
func (r *ReadingRequest) Validate() error {
	required := []string{
		r.Question,
		r.Email,
		r.FirstName,
		r.LastName,
		r.BirthDate,
		r.BirthTime,
		r.Country,
		r.City,
	}

	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}

	if strings.TrimSpace(r.CaptchaToken) == "" {
		return ErrMissingCaptcha
	}

	return nil
}

// FullName имя получателя для документа и письма
func (r *ReadingRequest) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// BirthPlace место рождения одной строкой
func (r *ReadingRequest) BirthPlace() string {
	return r.City + ", " + r.Country
}

// OutboundEmail письмо с готовым документом для отправки пользователю
type OutboundEmail struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}
