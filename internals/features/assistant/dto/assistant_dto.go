package dto

// ChatMessage is one turn of the conversation. The caller keeps the
// history and sends it back with every request.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// ================== REQUEST ==================
type ChatRequest struct {
	Prompt  string        `json:"prompt" validate:"required,min=1,max=2000"`
	History []ChatMessage `json:"history" validate:"omitempty,max=40,dive"`
}

// ================== RESPONSE ==================
type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}
