// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry represents a contact message submitted through the public site.
type Inquiry struct {
	ID        uuid.UUID // The unique ID for this inquiry.
	Name      string    // The sender's name as submitted.
	Email     string    // The sender's reply address as submitted.
	Subject   string    // Short subject line of the message.
	Body      string    // Full message body.
	Handled   bool      // Whether an administrator has marked this inquiry as dealt with.
	CreatedAt time.Time // Timestamp of when the inquiry was submitted.
}
