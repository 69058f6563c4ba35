package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
)

// LookupOrCreateOrganization resolves an organization id by exact English
// name, inserting the organization when absent. Looking up before inserting
// keeps re-runs from duplicating organizations after a partial external
// failure. Two pipelines running concurrently against the same schema can
// still race here; the tool is single-operator by contract.
func (r *SeedRepository) LookupOrCreateOrganization(ctx context.Context, nameEn string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
SELECT "id" FROM "Organizations" WHERE "name" = $1 LIMIT 1
`, nameEn).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, errors.Wrapf(err, "lookup organization %s", nameEn)
	}

	now := time.Now().UTC()
	if err := r.pool.QueryRow(ctx, `
INSERT INTO "Organizations" ("name", "createdAt", "updatedAt")
VALUES ($1, $2, $2)
RETURNING "id"
`, nameEn, now).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "create organization %s", nameEn)
	}
	return id, nil
}

// CodeExists reports whether a workflow code is already present in either
// code-bearing collection.
func (r *SeedRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM "RegistrationReferences" WHERE "code" = $1)
    OR EXISTS (SELECT 1 FROM "PortalUserChangeRequests" WHERE "code" = $1)
`, code).Scan(&exists)
	if err != nil {
		return false, errors.Wrapf(err, "probe code %s", code)
	}
	return exists, nil
}
