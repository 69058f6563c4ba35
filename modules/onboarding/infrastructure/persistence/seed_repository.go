// Package persistence is the pgx-backed store. One run is one transaction:
// every collection is bulk-loaded with CopyFrom in foreign-key dependency
// order, and any failure rolls the whole run back.
package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
)

type SeedRepository struct {
	pool *pgxpool.Pool
}

func NewSeedRepository(pool *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{pool: pool}
}

// NewPool connects a pgx pool for the repository.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return pool, nil
}

// InsertBatches writes every collection inside a single transaction, in
// dependency order. Either everything commits or nothing does.
func (r *SeedRepository) InsertBatches(ctx context.Context, b *record.Batches) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := copyReferences(ctx, tx, b.References); err != nil {
		return errors.Wrap(err, record.CollectionReferences)
	}
	if err := copyCompanyProfiles(ctx, tx, b.CompanyProfiles); err != nil {
		return errors.Wrap(err, record.CollectionCompanyProfiles)
	}
	if err := copyCeoProfiles(ctx, tx, b.CeoProfiles); err != nil {
		return errors.Wrap(err, record.CollectionCeoProfiles)
	}
	if err := copyOrgAdminProfiles(ctx, tx, b.OrgAdminProfiles); err != nil {
		return errors.Wrap(err, record.CollectionOrgAdminProfiles)
	}
	if err := copyChangeRequests(ctx, tx, b.ChangeRequests); err != nil {
		return errors.Wrap(err, record.CollectionChangeRequests)
	}
	if err := copyUserRequestLists(ctx, tx, b.UserRequestLists); err != nil {
		return errors.Wrap(err, record.CollectionUserRequestLists)
	}
	if err := copyUserProfiles(ctx, tx, b.UserProfiles); err != nil {
		return errors.Wrap(err, record.CollectionUserProfiles)
	}
	if err := copyCompanyPortal(ctx, tx, b.CompanyPortal); err != nil {
		return errors.Wrap(err, record.CollectionCompanyPortal)
	}
	if err := copyCeoPortal(ctx, tx, b.CeoPortal); err != nil {
		return errors.Wrap(err, record.CollectionCeoPortal)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	committed = true
	return nil
}

func copyReferences(ctx context.Context, tx pgx.Tx, rows []record.RegistrationReference) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionReferences},
		[]string{"id", "code", "status", "requestType", "contactPersonPhone", "contactPersonEmail", "contactPersonNameEn", "contactPersonNameTh", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.ID, r.Code, string(r.Status), string(r.RequestType), r.ContactPersonPhone, r.ContactPersonEmail, r.ContactPersonNameEn, r.ContactPersonNameTh, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyCompanyProfiles(ctx context.Context, tx pgx.Tx, rows []record.RegistrationCompanyProfile) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionCompanyProfiles},
		[]string{"nameTh", "nameEn", "sector", "code", "addressTh", "addressEn", "phone", "referenceId", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.NameTh, r.NameEn, r.Sector, r.Code, r.AddressTh, r.AddressEn, r.Phone, r.ReferenceID, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyCeoProfiles(ctx context.Context, tx pgx.Tx, rows []record.RegistrationCeoProfile) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionCeoProfiles},
		[]string{"fullNameTh", "fullNameEn", "positionTh", "positionEn", "phone", "email", "referenceId", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.FullNameTh, r.FullNameEn, r.PositionTh, r.PositionEn, r.Phone, r.Email, r.ReferenceID, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyOrgAdminProfiles(ctx context.Context, tx pgx.Tx, rows []record.RegistrationOrgAdminProfile) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionOrgAdminProfiles},
		[]string{"fullNameTh", "fullNameEn", "positionTh", "positionEn", "phone", "email", "effectiveDate", "referenceId", "allowOpenChat", "lineId", "openChatName", "isAllowOpenChatChanged", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.FullNameTh, r.FullNameEn, r.PositionTh, r.PositionEn, r.Phone, r.Email, r.EffectiveDate, r.ReferenceID, r.AllowOpenChat, r.LineID, r.OpenChatName, r.IsAllowOpenChatChanged, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyChangeRequests(ctx context.Context, tx pgx.Tx, rows []record.PortalUserChangeRequest) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionChangeRequests},
		[]string{"id", "code", "type", "referenceId", "organizationId", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.ID, r.Code, string(r.Type), r.ReferenceID, r.OrganizationID, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyUserRequestLists(ctx context.Context, tx pgx.Tx, rows []record.PortalUserRequestList) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionUserRequestLists},
		[]string{"requestId", "email", "roleId", "fullNameEn", "fullNameTh", "positionEn", "positionTh", "lineId", "openChatName", "phone", "accessType", "status", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.RequestID, r.Email, r.RoleID, r.FullNameEn, r.FullNameTh, r.PositionEn, r.PositionTh, r.LineID, r.OpenChatName, r.Phone, string(r.AccessType), string(r.Status), r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyUserProfiles(ctx context.Context, tx pgx.Tx, rows []record.PortalUserProfile) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionUserProfiles},
		[]string{"userId", "fullNameEn", "fullNameTh", "positionEn", "positionTh", "lineId", "openChatName", "phone", "acceptConsentAt", "effectiveDate", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.UserID, r.FullNameEn, r.FullNameTh, r.PositionEn, r.PositionTh, r.LineID, r.OpenChatName, r.Phone, r.AcceptConsentAt, r.EffectiveDate, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyCompanyPortal(ctx context.Context, tx pgx.Tx, rows []record.PortalCompanyProfile) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionCompanyPortal},
		[]string{"nameTh", "nameEn", "sector", "code", "addressTh", "addressEn", "phone", "referenceId", "organizationId", "lastReviewedAt", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.NameTh, r.NameEn, r.Sector, r.Code, r.AddressTh, r.AddressEn, r.Phone, r.ReferenceID, r.OrganizationID, r.LastReviewedAt, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}

func copyCeoPortal(ctx context.Context, tx pgx.Tx, rows []record.PortalCeoProfile) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{record.CollectionCeoPortal},
		[]string{"fullNameTh", "fullNameEn", "positionTh", "positionEn", "phone", "email", "organizationId", "createdAt", "updatedAt"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.FullNameTh, r.FullNameEn, r.PositionTh, r.PositionEn, r.Phone, r.Email, r.OrganizationID, r.CreatedAt, r.UpdatedAt}, nil
		}),
	)
	return err
}
