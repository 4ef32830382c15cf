package models

// ChatRequest is the request body of the LLM chat-completion endpoint
// (OpenAI-compatible wire format).
type ChatRequest struct {
	// Model is the fixed model identifier configured for the service.
	Model string `json:"model"`

	// Messages is the ordered conversation: a system instruction framing
	// the assistant as a billing advocate followed by the user message.
	Messages []ChatMessage `json:"messages"`
}

// ChatMessage is one conversation entry of a chat-completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse mirrors the chat-completion response body. The service
// consumes the first choice's message content only.
type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
}

// ChatChoice is one completion alternative of a chat response.
type ChatChoice struct {
	Message ChatMessage `json:"message"`
}
