package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ParticipantID identifies one participant within a directory
type ParticipantID ID

// NewParticipantID creates a fresh participant identifier
func NewParticipantID() ParticipantID {
	return ParticipantID(NewID())
}

// String returns the string representation
func (id ParticipantID) String() string { return ID(id).String() }

// IsEmpty checks if the participant ID is empty
func (id ParticipantID) IsEmpty() bool { return ID(id).IsEmpty() }

// ParseParticipantID parses a string into ParticipantID
func ParseParticipantID(s string) (ParticipantID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("participant ID cannot be empty")
	}
	return ParticipantID(s), nil
}
