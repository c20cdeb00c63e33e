package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ReadingRequest {
	return ReadingRequest{
		Question:     "Will I change careers this year?",
		Email:        "user@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		BirthDate:    "1990-04-12",
		BirthTime:    "08:45",
		Country:      "Portugal",
		City:         "Lisbon",
		Consent:      true,
		CaptchaToken: "token-123",
	}
}

func TestValidate_AllFieldsPresent(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())
}

func TestValidate_MissingRequiredField(t *testing.T) {
	mutations := map[string]func(*ReadingRequest){
		"question":   func(r *ReadingRequest) { r.Question = "" },
		"email":      func(r *ReadingRequest) { r.Email = "" },
		"first name": func(r *ReadingRequest) { r.FirstName = "" },
		"last name":  func(r *ReadingRequest) { r.LastName = "" },
		"birth date": func(r *ReadingRequest) { r.BirthDate = "" },
		"birth time": func(r *ReadingRequest) { r.BirthTime = "" },
		"country":    func(r *ReadingRequest) { r.Country = "" },
		"city":       func(r *ReadingRequest) { r.City = "" },
		"whitespace": func(r *ReadingRequest) { r.City = "   " },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			assert.ErrorIs(t, req.Validate(), ErrMissingFields)
		})
	}
}

func TestValidate_MissingCaptchaIsDistinct(t *testing.T) {
	req := validRequest()
	req.CaptchaToken = ""

	err := req.Validate()
	assert.ErrorIs(t, err, ErrMissingCaptcha)
	assert.NotErrorIs(t, err, ErrMissingFields)
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	req := validRequest()
	req.Timezone = ""
	req.Notes = ""
	require.NoError(t, req.Validate())
}

func TestFullNameAndBirthPlace(t *testing.T) {
	req := validRequest()
	assert.Equal(t, "Jane Doe", req.FullName())
	assert.Equal(t, "Lisbon, Portugal", req.BirthPlace())
}
