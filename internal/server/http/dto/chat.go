package dto

// ChatRequest carries a message to the shopping assistant.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
