package roster

import (
	"testing"
)

func TestNewDirectoryNormalizesFields(t *testing.T) {
	dir := NewDirectory([]RawParticipant{
		{
			Section: "  BSCS 2-1N ",
			Name:    "Lorem D. Ipsum  ",
			Email:   " example1@example.com ",
			Wishes: []Wish{
				{Label: " Chocolate Box ", Description: " Any brand of assorted chocolates "},
			},
		},
	})

	if dir.Len() != 1 {
		t.Fatalf("expected 1 participant, got %d", dir.Len())
	}

	p := dir.At(0)
	if p.Section != "BSCS 2-1N" {
		t.Errorf("section not trimmed: %q", p.Section)
	}
	if p.Name != "Lorem D. Ipsum" {
		t.Errorf("name not trimmed: %q", p.Name)
	}
	if p.Email != "example1@example.com" {
		t.Errorf("email not trimmed: %q", p.Email)
	}
	if len(p.Wishes) != 1 {
		t.Fatalf("expected 1 wish, got %d", len(p.Wishes))
	}
	if p.Wishes[0].Label != "Chocolate Box" || p.Wishes[0].Description != "Any brand of assorted chocolates" {
		t.Errorf("wish not trimmed: %+v", p.Wishes[0])
	}
}

func TestNewDirectoryToleratesRaggedRecords(t *testing.T) {
	dir := NewDirectory([]RawParticipant{
		{Name: "No Email"},
		{Email: "only@example.com"},
		{},
	})

	if dir.Len() != 3 {
		t.Fatalf("expected 3 participants, got %d", dir.Len())
	}
	if got := dir.At(0).Email; got != "" {
		t.Errorf("missing email should stay empty, got %q", got)
	}
	if got := dir.At(1).Name; got != "" {
		t.Errorf("missing name should stay empty, got %q", got)
	}
	for i := 0; i < dir.Len(); i++ {
		if dir.At(i).ID.IsEmpty() {
			t.Errorf("participant %d has no identity", i)
		}
	}
}

func TestNewDirectoryPreservesOrderAndPositions(t *testing.T) {
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	records := make([]RawParticipant, len(names))
	for i, name := range names {
		records[i] = RawParticipant{Name: name}
	}

	dir := NewDirectory(records)
	for i, name := range names {
		p := dir.At(i)
		if p.Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, p.Name)
		}
		if p.Position != i {
			t.Errorf("position %d: recorded position %d", i, p.Position)
		}
	}
}

func TestNewDirectoryDistinguishesIdenticalRecords(t *testing.T) {
	dir := NewDirectory([]RawParticipant{
		{Name: "Ipsum D. Lorem", Email: "twin@example.com"},
		{Name: "Ipsum D. Lorem", Email: "twin@example.com"},
	})

	a, b := dir.At(0), dir.At(1)
	if a.ID == b.ID {
		t.Error("identical records must still get distinct identities")
	}
	if a.Position == b.Position {
		t.Error("identical records must keep distinct positions")
	}
}

func TestNewDirectoryDropsEmptyWishes(t *testing.T) {
	dir := NewDirectory([]RawParticipant{
		{
			Name: "Sparse Wisher",
			Wishes: []Wish{
				{Label: "Pen Set", Description: "Gel pens in various colors"},
				{Label: "  ", Description: ""},
				{Label: "", Description: "Sour candy preferred"},
			},
		},
		{Name: "No Wishes", Wishes: []Wish{{}, {}, {}}},
	})

	wishes := dir.At(0).Wishes
	if len(wishes) != 2 {
		t.Fatalf("expected 2 wishes after dropping the empty entry, got %d", len(wishes))
	}
	if wishes[0].Label != "Pen Set" {
		t.Errorf("wish order changed: %+v", wishes)
	}
	if wishes[1].Description != "Sour candy preferred" {
		t.Errorf("label-less wish should survive: %+v", wishes)
	}

	if got := dir.At(1).Wishes; got != nil {
		t.Errorf("all-empty wish list should normalize to nil, got %+v", got)
	}
}

func TestParticipantsReturnsCopy(t *testing.T) {
	dir := NewDirectory([]RawParticipant{{Name: "Alice"}, {Name: "Bob"}})

	list := dir.Participants()
	list[0].Name = "Mallory"

	if dir.At(0).Name != "Alice" {
		t.Error("mutating the returned slice must not affect the directory")
	}
}
