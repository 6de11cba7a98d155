package roster

import (
	"strings"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/core"
)

// Wish is one entry on a participant's wish list: a short label plus a
// free-text description. Wish lists are ordered; the first entry is the
// priority wish.
type Wish struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// IsEmpty reports whether the wish carries no content at all.
func (w Wish) IsEmpty() bool {
	return w.Label == "" && w.Description == ""
}

// RawParticipant is an un-normalized participant record as supplied by a
// record source. Field presence is best-effort: sources map absent columns
// to empty strings rather than failing.
type RawParticipant struct {
	Section string
	Name    string
	Email   string
	Wishes  []Wish
}

// Participant is one validated member of a Directory. Identity is the
// unique ID assigned at directory construction; Position is the record's
// index in the original input order. Name and Email may be empty.
type Participant struct {
	ID       core.ParticipantID `json:"id"`
	Position int                `json:"position"`
	Section  string             `json:"section"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Wishes   []Wish             `json:"wishes,omitempty"`
}

// normalize trims whitespace from every field and drops wish entries that
// are empty on both sides, preserving the order of the rest.
func normalize(raw RawParticipant, position int) Participant {
	wishes := make([]Wish, 0, len(raw.Wishes))
	for _, w := range raw.Wishes {
		wish := Wish{
			Label:       strings.TrimSpace(w.Label),
			Description: strings.TrimSpace(w.Description),
		}
		if wish.IsEmpty() {
			continue
		}
		wishes = append(wishes, wish)
	}
	if len(wishes) == 0 {
		wishes = nil
	}

	return Participant{
		ID:       core.NewParticipantID(),
		Position: position,
		Section:  strings.TrimSpace(raw.Section),
		Name:     strings.TrimSpace(raw.Name),
		Email:    strings.TrimSpace(raw.Email),
		Wishes:   wishes,
	}
}
