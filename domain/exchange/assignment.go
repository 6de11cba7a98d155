package exchange

import (
	"fmt"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/core"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// Assignment pairs one giver with the participant they give to.
// Giver and Receiver are never the same participant.
type Assignment struct {
	Giver    roster.Participant `json:"giver"`
	Receiver roster.Participant `json:"receiver"`
}

// String renders the pair for logs and the draw echo.
func (a Assignment) String() string {
	return fmt.Sprintf("%s -> %s", a.Giver.Name, a.Receiver.Name)
}

// AssignmentSet is the complete result of one draw: exactly one assignment
// per participant, givers in directory order, receivers a derangement of
// the same participants. Computed once and read-only afterwards.
type AssignmentSet struct {
	assignments []Assignment
}

func newAssignmentSet(assignments []Assignment) AssignmentSet {
	return AssignmentSet{assignments: assignments}
}

// Len returns the number of assignments (== directory size).
func (s AssignmentSet) Len() int {
	return len(s.assignments)
}

// At returns the assignment whose giver sits at directory position i.
func (s AssignmentSet) At(i int) Assignment {
	return s.assignments[i]
}

// Assignments returns a copy of the full pairing in giver order.
func (s AssignmentSet) Assignments() []Assignment {
	out := make([]Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// ReceiverFor looks up who the given participant gives to.
func (s AssignmentSet) ReceiverFor(giverID core.ParticipantID) (roster.Participant, bool) {
	for _, a := range s.assignments {
		if a.Giver.ID == giverID {
			return a.Receiver, true
		}
	}
	return roster.Participant{}, false
}
