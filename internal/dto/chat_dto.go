package dto

// ChatRequest identifies the user and carries the raw message. The message is
// deliberately unconstrained beyond being a string.
type ChatRequest struct {
	UserId  int64  `json:"user_id" validate:"required"`
	Message string `json:"message"`
}

// ChatResponse carries the clean final answer. RelevantKnowledge is only ever
// genuine retrieved content, never an internal error or empty-state string.
type ChatResponse struct {
	AgentResponse     string  `json:"agent_response"`
	RelevantKnowledge *string `json:"relevant_knowledge"`
}
