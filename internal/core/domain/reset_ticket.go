package domain

import "time"

// ResetTicket is the ephemeral single-use handle created when a holder proves
// ownership of an account during the forgot-password flow. It is cleared after
// a successful reset and abandoned otherwise.
type ResetTicket struct {
	TicketID  string    `json:"ticketID"`
	AccountID string    `json:"accountID"`
	IssuedAt  time.Time `json:"issuedAt"`
}
