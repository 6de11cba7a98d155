package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
)

// RosterSource reads participants from PostgreSQL. The source is read-only;
// the exchange itself never writes anything back.
//
// Expected schema:
//
//	CREATE TABLE participants (
//	    id      BIGSERIAL PRIMARY KEY,
//	    section TEXT,
//	    name    TEXT,
//	    email   TEXT
//	);
//	CREATE TABLE wishes (
//	    participant_id BIGINT REFERENCES participants(id),
//	    position       INT NOT NULL,
//	    label          TEXT,
//	    description    TEXT
//	);
type RosterSource struct {
	db *sqlx.DB
}

// Connect opens and pings a database connection for the roster source.
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	return db, nil
}

// NewRosterSource creates a roster source over an open connection.
func NewRosterSource(db *sqlx.DB) *RosterSource {
	return &RosterSource{db: db}
}

type participantRow struct {
	ID      int64          `db:"id"`
	Section sql.NullString `db:"section"`
	Name    sql.NullString `db:"name"`
	Email   sql.NullString `db:"email"`
}

type wishRow struct {
	ParticipantID int64          `db:"participant_id"`
	Position      int            `db:"position"`
	Label         sql.NullString `db:"label"`
	Description   sql.NullString `db:"description"`
}

// Load reads every participant and their wishes in stable insert order.
// NULL columns read as empty strings; the roster domain treats missing
// fields the same way regardless of source.
func (s *RosterSource) Load(ctx context.Context) ([]roster.RawParticipant, error) {
	var participants []participantRow
	err := s.db.SelectContext(ctx, &participants, `
		SELECT id, section, name, email
		FROM participants
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.RosterInvalid("failed to load participants", err)
	}

	var wishes []wishRow
	err = s.db.SelectContext(ctx, &wishes, `
		SELECT participant_id, position, label, description
		FROM wishes
		ORDER BY participant_id, position
	`)
	if err != nil {
		return nil, errors.RosterInvalid("failed to load wishes", err)
	}

	wishesByParticipant := make(map[int64][]roster.Wish, len(participants))
	for _, w := range wishes {
		wishesByParticipant[w.ParticipantID] = append(wishesByParticipant[w.ParticipantID], roster.Wish{
			Label:       w.Label.String,
			Description: w.Description.String,
		})
	}

	records := make([]roster.RawParticipant, 0, len(participants))
	for _, p := range participants {
		records = append(records, roster.RawParticipant{
			Section: p.Section.String,
			Name:    p.Name.String,
			Email:   p.Email.String,
			Wishes:  wishesByParticipant[p.ID],
		})
	}
	return records, nil
}
