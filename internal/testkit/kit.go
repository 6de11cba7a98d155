package testkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

// DummyRoster returns the three fixed smoke-test participants. Raw values
// are deliberately messy (trailing spaces) so normalization stays covered.
func DummyRoster() []roster.RawParticipant {
	return []roster.RawParticipant{
		{
			Section: "BSCS 2-1N",
			Email:   "example1@example.com",
			Name:    "Lorem D. Ipsum  ",
			Wishes: []roster.Wish{
				{Label: "Chocolate Box", Description: "Any brand of assorted chocolates"},
				{Label: "Notebook", Description: "Preferably A5 size with lined pages"},
				{Label: "Keychain", Description: "Cute animal designs"},
			},
		},
		{
			Section: "BSCS 2-1N",
			Email:   "example2@example.com",
			Name:    "Ipsum D. Lorem",
			Wishes: []roster.Wish{
				{Label: "Pen Set", Description: "Gel pens in various colors"},
				{Label: "Stickers", Description: "Aesthetic or anime stickers"},
				{Label: "Candy", Description: "Sour candy preferred"},
			},
		},
		{
			Section: "BSCS 2-1N",
			Email:   "example3@example.com",
			Name:    "Luffy D. Lorem",
			Wishes: []roster.Wish{
				{Label: "Bookmark", Description: "Metal or magnetic bookmarks"},
				{Label: "Snacks", Description: "Any chips or crackers"},
				{Label: "Hair Clips", Description: "Simple and minimalist design"},
			},
		},
	}
}

// DummyDirectory builds the dummy roster into a ready directory.
func DummyDirectory() roster.Directory {
	return roster.NewDirectory(DummyRoster())
}

// StaticRosterSource serves a fixed record slice as a ports.RosterSource.
type StaticRosterSource struct {
	Records []roster.RawParticipant
	Err     error
}

func (s *StaticRosterSource) Load(ctx context.Context) ([]roster.RawParticipant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]roster.RawParticipant, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// ScriptedPermutations replays a fixed permutation sequence, repeating the
// last entry once the script runs out. Deterministic stand-in for the
// production source.
type ScriptedPermutations struct {
	Perms [][]int
	next  int
}

func (s *ScriptedPermutations) Permutation(n int) []int {
	p := s.Perms[s.next]
	if s.next < len(s.Perms)-1 {
		s.next++
	}
	out := make([]int, len(p))
	copy(out, p)
	return out
}

// SentMessage captures one Notifier.Send call.
type SentMessage struct {
	To  ports.Recipient
	Msg ports.Message
}

// RecordingNotifier collects sends in memory. FailFor makes delivery to one
// address fail, for abort-on-first-error tests.
type RecordingNotifier struct {
	mu      sync.Mutex
	sent    []SentMessage
	FailFor string
}

func (n *RecordingNotifier) Send(ctx context.Context, to ports.Recipient, msg ports.Message) error {
	if n.FailFor != "" && to.Email == n.FailFor {
		return fmt.Errorf("scripted delivery failure for %s", to.Email)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, SentMessage{To: to, Msg: msg})
	return nil
}

// Sent returns a copy of everything delivered so far.
func (n *RecordingNotifier) Sent() []SentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]SentMessage, len(n.sent))
	copy(out, n.sent)
	return out
}

// StubRenderer produces minimal one-line messages, for tests that exercise
// orchestration rather than templates. Err short-circuits every render.
type StubRenderer struct {
	Subject string
	Err     error
}

func (r *StubRenderer) Render(giver, receiver roster.Participant) (ports.Message, error) {
	if r.Err != nil {
		return ports.Message{}, r.Err
	}
	subject := r.Subject
	if subject == "" {
		subject = "Your Secret Santa Assignment!"
	}
	return ports.Message{
		Subject: subject,
		Text:    fmt.Sprintf("Hello %s! You've been tasked to gift %s.", giver.Name, receiver.Name),
	}, nil
}

// Interface conformance for the fakes.
var (
	_ ports.RosterSource = (*StaticRosterSource)(nil)
	_ ports.Notifier     = (*RecordingNotifier)(nil)
	_ ports.Renderer     = (*StubRenderer)(nil)
)
