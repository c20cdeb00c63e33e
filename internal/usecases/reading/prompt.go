package reading

import (
	"fmt"
	"strings"

	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

// Шаблоны промпта для генератора. Структура ответа зашита в инструкции,
// чтобы текст ложился в PDF без постобработки.
const (
	promptIntro = "You are an experienced astrologer preparing a personal written reading for a client."

	promptStructure = `Structure the reading exactly as follows:
1. A short summary (2-3 sentences).
2. Key themes relevant to the question.
3. Probabilistic timing windows - phrase timing as likelihoods, never certainties.
4. Practical guidance the client can act on.
5. A warm closing.`

	promptSafety = "Do not give medical, legal or financial advice. " +
		"End with a brief disclaimer that the reading is for guidance and entertainment purposes only."
)

// buildMailBody текст письма, ссылающийся на исходный вопрос
func buildMailBody(brand, question string) string {
	return fmt.Sprintf(
		"Hello,\n\nThank you for your request to %s.\n\nYour question: %s\n\nYour personal reading is attached as a PDF document.\n\nWith warm regards,\n%s",
		brand, question, brand,
	)
}

// BuildPrompt собирает промпт с вопросом и данными рождения клиента
func BuildPrompt(req domain.ReadingRequest) string {
	var b strings.Builder

	b.WriteString(promptIntro)
	b.WriteString("\n\n")

	b.WriteString("Client details:\n")
	b.WriteString(fmt.Sprintf("- Name: %s\n", req.FullName()))
	b.WriteString(fmt.Sprintf("- Date of birth: %s\n", req.BirthDate))
	b.WriteString(fmt.Sprintf("- Time of birth: %s\n", req.BirthTime))
	b.WriteString(fmt.Sprintf("- Place of birth: %s\n", req.BirthPlace()))
	if req.Timezone != "" {
		b.WriteString(fmt.Sprintf("- Timezone: %s\n", req.Timezone))
	}
	if req.Notes != "" {
		b.WriteString(fmt.Sprintf("- Additional notes: %s\n", req.Notes))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("The client asks: %s\n\n", req.Question))

	b.WriteString(promptStructure)
	b.WriteString("\n\n")
	b.WriteString(promptSafety)

	return b.String()
}
