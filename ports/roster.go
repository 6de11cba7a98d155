package ports

import (
	"context"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// RosterSource loads raw participant records from an external store.
// Implementations exist for tabular files (CSV/XLSX), Postgres, and
// the built-in dummy roster used for smoke runs.
type RosterSource interface {
	// Load reads every record the source holds, in source order.
	// Records come back raw; normalization happens in the roster domain.
	Load(ctx context.Context) ([]roster.RawParticipant, error)
}
