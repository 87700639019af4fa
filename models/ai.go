package models

// AIRequest is one turn of a concierge conversation.
type AIRequest struct {
	UserID string `json:"userID"`
	Role   string `json:"role"` // "guest", "staff" or "manager"
	Name   string `json:"name"`
	Text   string `json:"text"`
}

// AIResponse carries the concierge reply plus the detected intent, so the
// client can render follow-up actions.
type AIResponse struct {
	Intent       string `json:"intent"`
	ResponseText string `json:"responseText"`
}

// AIContext is the per-user conversation state kept in Redis between turns.
type AIContext struct {
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
	LastIntent string `json:"lastIntent,omitempty"`
}

// ReminderPayload is the asynq task body for a check-in reminder email.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	GuestName     string `json:"guestName"`
	Email         string `json:"email"`
	RoomNumber    string `json:"roomNumber"`
	CheckIn       string `json:"checkIn"`
}
