// Package synthesis derives the per-company workflow records that must exist
// before any dependent row can be attached: one registration reference and
// one user change request per indexed company, both carrying the company's
// discovery rank as their id.
package synthesis

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
	"github.com/aimc-tcm/regseed/modules/onboarding/linkage"
)

// OrganizationDirectory resolves a company's portal organization id by exact
// English name, creating the organization when it does not exist yet. The
// lookup-before-create contract keeps re-runs from duplicating organizations.
type OrganizationDirectory interface {
	LookupOrCreate(ctx context.Context, nameEn string) (int64, error)
}

// Result carries everything later stages need: the synthesized records plus
// the organization id per company rank.
type Result struct {
	References      []record.RegistrationReference
	ChangeRequests  []record.PortalUserChangeRequest
	OrganizationIDs map[int]int64
}

type Synthesizer struct {
	gen  *Generator
	orgs OrganizationDirectory
	now  time.Time

	orgCache map[string]int64
}

// NewSynthesizer builds a Synthesizer. A nil directory falls back to using
// the discovery rank as organization id, which matches a schema seeded from
// scratch. now is read once per run so every record carries one timestamp.
func NewSynthesizer(gen *Generator, orgs OrganizationDirectory, now time.Time) *Synthesizer {
	return &Synthesizer{
		gen:      gen,
		orgs:     orgs,
		now:      now,
		orgCache: make(map[string]int64),
	}
}

// Synthesize runs over the whole index in discovery order. It must complete
// for every company before dependent records are assembled, because those
// records borrow referenceId and organizationId from here.
func (s *Synthesizer) Synthesize(ctx context.Context, idx *linkage.Index) (*Result, error) {
	res := &Result{
		References:      make([]record.RegistrationReference, 0, idx.Len()),
		ChangeRequests:  make([]record.PortalUserChangeRequest, 0, idx.Len()),
		OrganizationIDs: make(map[int]int64, idx.Len()),
	}

	for _, e := range idx.Entries() {
		refCode, err := s.gen.Next(ctx, ReferenceCodePrefix)
		if err != nil {
			return nil, errors.Wrapf(err, "reference code for %s", e.Row.NameEn)
		}
		res.References = append(res.References, record.RegistrationReference{
			ID:                  e.Rank,
			Code:                refCode,
			Status:              record.ReferencePendingCEOApproval,
			RequestType:         record.RequestCreate,
			ContactPersonPhone:  e.Row.ContactPersonPhone,
			ContactPersonEmail:  e.Row.ContactPersonEmail,
			ContactPersonNameEn: e.Row.ContactPersonNameEn,
			ContactPersonNameTh: e.Row.ContactPersonNameTh,
			CreatedAt:           s.now,
			UpdatedAt:           s.now,
		})

		orgID, err := s.organizationID(ctx, e)
		if err != nil {
			return nil, errors.Wrapf(err, "organization for %s", e.Row.NameEn)
		}
		res.OrganizationIDs[e.Rank] = orgID

		crCode, err := s.gen.Next(ctx, ChangeRequestCodePrefix)
		if err != nil {
			return nil, errors.Wrapf(err, "change request code for %s", e.Row.NameEn)
		}
		res.ChangeRequests = append(res.ChangeRequests, record.PortalUserChangeRequest{
			ID:             e.Rank,
			Code:           crCode,
			Type:           record.ChangeRequestInternal,
			ReferenceID:    e.Rank,
			OrganizationID: orgID,
			CreatedAt:      s.now,
			UpdatedAt:      s.now,
		})
	}
	return res, nil
}

func (s *Synthesizer) organizationID(ctx context.Context, e *linkage.Entry) (int64, error) {
	if s.orgs == nil {
		return int64(e.Rank), nil
	}
	if id, ok := s.orgCache[e.Key]; ok {
		return id, nil
	}
	id, err := s.orgs.LookupOrCreate(ctx, e.Row.NameEn)
	if err != nil {
		return 0, err
	}
	s.orgCache[e.Key] = id
	return id, nil
}
