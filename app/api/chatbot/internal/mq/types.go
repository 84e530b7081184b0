package mq

// ChatEvent is published after each handled chat message so downstream
// analytics can track traffic per category.
type ChatEvent struct {
	ReplyId    int64   `json:"reply_id"`
	UserId     string  `json:"user_id,omitempty"`
	SessionId  string  `json:"session_id,omitempty"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Service    string  `json:"service"`
	ElapsedMs  int64   `json:"elapsed_ms"`
	Timestamp  int64   `json:"timestamp"`
}
