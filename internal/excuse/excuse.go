// Package excuse holds the core domain logic: the excuse request and
// response types, the prompt sent to the model, and the normalizer that
// turns an arbitrary model reply into a usable subject/body pair.
package excuse

import "errors"

// Request describes the scenario an excuse email is drafted for.
type Request struct {
	Category      string `json:"category"`
	Tone          string `json:"tone"`
	Seriousness   int    `json:"seriousness"`
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	ETAWhen       string `json:"eta_when"`
}

// Response is the payload returned to the caller. When Success is false,
// Subject and Body are empty and Error carries a human-readable message.
type Response struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

var (
	// ErrMissingNames is returned when the recipient or sender name is empty.
	ErrMissingNames = errors.New("recipient name and sender name are required")

	// ErrSeriousnessRange is returned when seriousness is outside [1,5].
	// Out-of-range values are rejected, never clamped.
	ErrSeriousnessRange = errors.New("seriousness must be between 1 and 5")
)

// Validate checks the request before any upstream call is made.
func (r *Request) Validate() error {
	if r.RecipientName == "" || r.SenderName == "" {
		return ErrMissingNames
	}
	if r.Seriousness < 1 || r.Seriousness > 5 {
		return ErrSeriousnessRange
	}
	return nil
}
