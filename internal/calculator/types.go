package calculator

import "time"

// SessionResponse is the JSON body describing one calculator screen.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	Display   string    `json:"display"`
	State     State     `json:"state"`
}

// PressRequest is the JSON body for POST /calculator/sessions/{id}/press.
type PressRequest struct {
	Glyphs []string `json:"glyphs"` // button glyphs, applied in order
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Left     string `json:"left"`
	Operator string `json:"operator"` // a keypad glyph, e.g. "×"
	Right    string `json:"right"`
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Left     string   `json:"left"`
	Operator Operator `json:"operator"`
	Right    string   `json:"right"`
	Result   string   `json:"result"`
}

func newSessionResponse(s *Session, snap Snapshot) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		CreatedAt: s.CreatedAt,
		Display:   snap.Display,
		State:     snap.State,
	}
}
