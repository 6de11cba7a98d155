package roster

// Directory holds the validated, order-preserving list of participants an
// exchange operates on. It is a pure value holder: construction normalizes
// the raw records and assigns identities, and nothing mutates it afterwards.
//
// A Directory performs no duplicate detection. Two records with identical
// names are still two distinct participants; identity is positional, not
// value-based.
type Directory struct {
	participants []Participant
}

// NewDirectory builds a Directory from raw records in input order. Ragged
// records are tolerated: missing fields stay empty strings and never cause
// an error.
func NewDirectory(records []RawParticipant) Directory {
	participants := make([]Participant, len(records))
	for i, raw := range records {
		participants[i] = normalize(raw, i)
	}
	return Directory{participants: participants}
}

// Len returns the number of participants.
func (d Directory) Len() int {
	return len(d.participants)
}

// At returns the participant at position i. The caller must keep i within
// [0, Len()).
func (d Directory) At(i int) Participant {
	return d.participants[i]
}

// Participants returns a copy of the participant list in directory order.
func (d Directory) Participants() []Participant {
	out := make([]Participant, len(d.participants))
	copy(out, d.participants)
	return out
}
