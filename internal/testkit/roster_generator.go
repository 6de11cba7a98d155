package testkit

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// RosterGeneratorConfig configures the synthetic roster generator
type RosterGeneratorConfig struct {
	Count   int    `json:"count"`
	Section string `json:"section"`
	Seed    int64  `json:"seed"`
}

// DefaultRosterConfig returns sensible defaults for synthetic rosters
func DefaultRosterConfig() RosterGeneratorConfig {
	return RosterGeneratorConfig{
		Count:   12,
		Section: "BSCS 2-1N",
		Seed:    42,
	}
}

// RosterGenerator produces deterministic synthetic participant records for
// verify runs and larger test fixtures.
type RosterGenerator struct {
	config RosterGeneratorConfig
	rng    *rand.Rand
}

// NewRosterGenerator creates a generator seeded from the config
func NewRosterGenerator(config RosterGeneratorConfig) *RosterGenerator {
	return &RosterGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var (
	givenNames = []string{
		"Lorem", "Ipsum", "Dolor", "Amet", "Luffy", "Nami", "Zoro", "Robin",
		"Sanji", "Vivi", "Kaya", "Shanks",
	}
	middleInitials = []string{"A", "B", "C", "D", "E", "J", "M", "R"}
	surnames       = []string{
		"Ipsum", "Lorem", "Dolor", "Santos", "Reyes", "Cruz", "Bautista",
		"Garcia", "Mendoza", "Torres", "Flores", "Ramos",
	}
	wishPool = []roster.Wish{
		{Label: "Chocolate Box", Description: "Any brand of assorted chocolates"},
		{Label: "Notebook", Description: "Preferably A5 size with lined pages"},
		{Label: "Keychain", Description: "Cute animal designs"},
		{Label: "Pen Set", Description: "Gel pens in various colors"},
		{Label: "Stickers", Description: "Aesthetic or anime stickers"},
		{Label: "Candy", Description: "Sour candy preferred"},
		{Label: "Bookmark", Description: "Metal or magnetic bookmarks"},
		{Label: "Snacks", Description: "Any chips or crackers"},
		{Label: "Hair Clips", Description: "Simple and minimalist design"},
		{Label: "Mug", Description: "Ceramic, any festive print"},
		{Label: "Socks", Description: "Warm and colorful"},
		{Label: "Tumbler", Description: "Around 500ml, any color"},
	}
)

// Generate produces Count raw participant records. Names repeat with a
// numeric suffix once the name pool is exhausted, emails stay unique.
func (g *RosterGenerator) Generate() []roster.RawParticipant {
	records := make([]roster.RawParticipant, 0, g.config.Count)

	for i := 0; i < g.config.Count; i++ {
		given := givenNames[g.rng.Intn(len(givenNames))]
		middle := middleInitials[g.rng.Intn(len(middleInitials))]
		surname := surnames[g.rng.Intn(len(surnames))]

		name := fmt.Sprintf("%s %s. %s", given, middle, surname)
		if i >= len(givenNames) {
			name = fmt.Sprintf("%s %d", name, i+1)
		}

		wishes := make([]roster.Wish, 0, 3)
		for _, idx := range g.rng.Perm(len(wishPool))[:3] {
			wishes = append(wishes, wishPool[idx])
		}

		records = append(records, roster.RawParticipant{
			Section: g.config.Section,
			Name:    name,
			Email:   fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(given), strings.ToLower(surname), i+1),
			Wishes:  wishes,
		})
	}

	return records
}

// GenerateDirectory builds the synthetic records into a directory.
func (g *RosterGenerator) GenerateDirectory() roster.Directory {
	return roster.NewDirectory(g.Generate())
}
