package repos

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"

	"pakjunctions-ingest/junctions"
)

// Migrate creates the junctions table on first use.
func (r *Repo) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS junctions (
			id SERIAL PRIMARY KEY,
			run_id UUID NOT NULL,
			generated TIMESTAMPTZ NOT NULL,
			name TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			city TEXT NOT NULL,
			area TEXT NOT NULL,
			has_signal BOOLEAN NOT NULL,
			osm_id BIGINT,
			highway_type TEXT,
			UNIQUE (run_id, name, city)
		)
	`)
	return err
}

// SaveRun inserts every junction of one export run in a single
// transaction.
func (r *Repo) SaveRun(ctx context.Context, runID uuid.UUID, generated time.Time, list []junctions.Junction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, j := range list {
		var osmID *int64
		if j.OSMID != 0 {
			id := j.OSMID
			osmID = &id
		}
		batch.Queue(`
			INSERT INTO junctions (run_id, generated, name, latitude, longitude,
			                       city, area, has_signal, osm_id, highway_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (run_id, name, city) DO NOTHING
		`, runID, generated, j.Name, j.Latitude, j.Longitude,
			j.City, j.Area, j.HasTrafficSignal, osmID, j.HighwayType)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < len(list); i++ {
		_, err := results.Exec()
		if err != nil {
			return err
		}
	}
	_ = results.Close()

	return tx.Commit(ctx)
}
