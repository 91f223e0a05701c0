package seeder

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/entity"
)

// Tables seeded with explicit ids whose id column is backed by a
// postgres sequence. Departments are excluded: their ids are always
// caller-assigned.
var serialTables = []string{"committees", "procedures", "users"}

// Module wires the seeder.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// References seeds the lookup tables orders depend on: committees,
// departments, procedures, and users.
func (s *Seeder) References(ctx context.Context) error {
	committees := []entity.Committee{
		{ID: 1, Name: "general purchasing committee"},
		{ID: 2, Name: "medical supplies committee"},
	}
	for _, sample := range committees {
		committee := sample
		_, err := s.db.NewInsert().Model(&committee).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	departments := []entity.Department{
		{ID: 101, Name: "electrical department", CommitteeID: 1},
		{ID: 102, Name: "mechanical department", CommitteeID: 1},
		{ID: 201, Name: "pharmacy department", CommitteeID: 2},
	}
	for _, sample := range departments {
		department := sample
		_, err := s.db.NewInsert().Model(&department).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	procedures := []entity.Procedure{
		{ID: 1, Name: "direct purchase"},
		{ID: 2, Name: "public tender"},
		{ID: 3, Name: "limited tender"},
	}
	for _, sample := range procedures {
		procedure := sample
		_, err := s.db.NewInsert().Model(&procedure).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	users := []entity.User{
		{ID: 1, Name: "admin"},
	}
	for _, sample := range users {
		user := sample
		_, err := s.db.NewInsert().Model(&user).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	if err := s.advanceSequences(ctx); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("seeded reference data",
			zap.Int("committees", len(committees)),
			zap.Int("departments", len(departments)),
			zap.Int("procedures", len(procedures)),
			zap.Int("users", len(users)),
		)
	}
	return nil
}

// advanceSequences moves each serial id sequence past the explicit ids
// the seed rows carry. Postgres sequences do not advance on explicit-id
// inserts, so without this the next autoincrement insert collides with
// a seeded row.
func (s *Seeder) advanceSequences(ctx context.Context) error {
	if s.db.Dialect().Name() != dialect.PG {
		return nil
	}
	for _, table := range serialTables {
		_, err := s.db.NewRaw(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), (SELECT COALESCE(MAX(id), 1) FROM ?))",
			table, bun.Ident(table),
		).Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
