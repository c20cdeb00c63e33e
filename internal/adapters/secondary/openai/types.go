package openai

// chatMessage одно сообщение в chat-completions запросе
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest тело запроса к chat-completions
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatCompletionResponse интересующая нас часть ответа
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// apiError структурированная ошибка провайдера
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
