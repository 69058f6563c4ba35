// Package services wires the pipeline stages together: extract sheet rows,
// link them to companies, synthesize the per-company workflow records, then
// assemble every output collection and hand the whole batch to the store.
// The run is single-threaded end to end; the id invariants depend on strictly
// order-preserving processing.
package services

import (
	"context"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/aimc-tcm/regseed/modules/onboarding/assemble"
	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
	"github.com/aimc-tcm/regseed/modules/onboarding/infrastructure/excel"
	"github.com/aimc-tcm/regseed/modules/onboarding/linkage"
	"github.com/aimc-tcm/regseed/modules/onboarding/report"
	"github.com/aimc-tcm/regseed/modules/onboarding/synthesis"
)

// Store is the persistence collaborator. InsertBatches is all-or-nothing:
// either every record of every collection is committed or none are.
type Store interface {
	InsertBatches(ctx context.Context, batches *record.Batches) error
	LookupOrCreateOrganization(ctx context.Context, nameEn string) (int64, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

// ErrNoStore is returned when an apply run is requested without a store.
var ErrNoStore = errors.New("no store configured")

// RunResult is the complete output of one pipeline invocation.
type RunResult struct {
	Batches *record.Batches
	Report  *report.Report
}

type SeedService struct {
	store   Store
	matcher linkage.Matcher
	source  io.Reader
	logger  logrus.FieldLogger
	now     func() time.Time
}

// Option configures a SeedService.
type Option func(*SeedService)

// WithMatcher selects the fuzzy matching strategy.
func WithMatcher(m linkage.Matcher) Option {
	return func(s *SeedService) { s.matcher = m }
}

// WithRandSource overrides the code generator's random source. Tests use a
// seeded source so two runs over the same workbook produce identical codes.
func WithRandSource(r io.Reader) Option {
	return func(s *SeedService) { s.source = r }
}

// WithClock overrides the run clock.
func WithClock(now func() time.Time) Option {
	return func(s *SeedService) { s.now = now }
}

func NewSeedService(store Store, logger logrus.FieldLogger, opts ...Option) *SeedService {
	s := &SeedService{
		store:   store,
		matcher: linkage.SubstringMatcher{},
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
	if logger == nil {
		s.logger = logrus.StandardLogger()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan runs the pure pipeline stages over already-loaded sheets and returns
// the batches plus the run report without touching the store. Organization
// ids fall back to the company rank.
func (s *SeedService) Plan(ctx context.Context, sheets excel.Sheets) (*RunResult, error) {
	res, err := s.build(ctx, sheets, nil)
	if err != nil {
		return nil, err
	}
	res.Report.DryRun = true
	return res, nil
}

// Apply runs the pipeline and commits the batches through the store in one
// atomic unit. A store failure surfaces unmodified; nothing is partially
// applied.
func (s *SeedService) Apply(ctx context.Context, sheets excel.Sheets) (*RunResult, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	res, err := s.build(ctx, sheets, s.store)
	if err != nil {
		return nil, err
	}
	if err := s.store.InsertBatches(ctx, res.Batches); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"runId":   res.Report.RunID,
		"records": res.Batches.Total(),
	}).Info("batches committed")
	return res, nil
}

// build executes extract -> link -> synthesize -> assemble. A nil store keeps
// the run free of external reads and writes.
func (s *SeedService) build(ctx context.Context, sheets excel.Sheets, store Store) (*RunResult, error) {
	rep := report.New()
	now := s.now()

	for _, sheet := range []string{
		excel.SheetCompanyProfiles,
		excel.SheetCeoProfiles,
		excel.SheetOrgAdminProfiles,
		excel.SheetUserRequestLists,
	} {
		if !sheets.Has(sheet) {
			rep.AddParseGap(sheet)
			s.logger.WithField("sheet", sheet).Warn("sheet missing, continuing with no rows")
		}
	}

	companies := excel.CompanyRows(sheets)
	ceos := excel.CeoRows(sheets)
	admins := excel.OrgAdminRows(sheets)
	users := excel.UserRows(sheets)

	idx := linkage.BuildIndex(companies, rep)
	s.logger.WithFields(logrus.Fields{
		"companies":  idx.Len(),
		"ceoRows":    len(ceos),
		"adminRows":  len(admins),
		"userRows":   len(users),
		"duplicates": len(rep.Duplicates),
	}).Info("company index built")

	var checker synthesis.CodeChecker
	var orgs synthesis.OrganizationDirectory
	if store != nil {
		checker = codeCheckerAdapter{store}
		orgs = orgDirectoryAdapter{store}
	}
	synth, err := synthesis.NewSynthesizer(synthesis.NewGenerator(s.source, checker), orgs, now).Synthesize(ctx, idx)
	if err != nil {
		return nil, errors.Wrap(err, "synthesize workflow records")
	}

	asm := assemble.New(linkage.NewResolver(idx, s.matcher), synth, rep, now)

	batches := &record.Batches{
		References:       synth.References,
		ChangeRequests:   synth.ChangeRequests,
		CompanyProfiles:  asm.Companies(idx),
		CeoProfiles:      asm.Ceos(ceos),
		OrgAdminProfiles: asm.OrgAdmins(admins),
		UserRequestLists: asm.Users(users),
	}
	batches.UserProfiles = asm.PortalUsers(batches.UserRequestLists)
	batches.CompanyPortal = asm.PortalCompanies(batches.CompanyProfiles)
	batches.CeoPortal = asm.PortalCeos(batches.CeoProfiles)

	for _, f := range rep.LinkFailures {
		s.logger.WithFields(logrus.Fields{
			"entity":  f.Entity,
			"row":     f.RowIndex,
			"company": f.Company,
			"email":   f.Email,
			"remark":  f.Remark,
		}).Warn("row not linked to any company, excluded from output")
	}

	rep.RecordCount = batches.Counts()
	rep.FinishedAt = s.now()
	return &RunResult{Batches: batches, Report: rep}, nil
}

type codeCheckerAdapter struct{ store Store }

func (a codeCheckerAdapter) CodeExists(ctx context.Context, code string) (bool, error) {
	return a.store.CodeExists(ctx, code)
}

type orgDirectoryAdapter struct{ store Store }

func (a orgDirectoryAdapter) LookupOrCreate(ctx context.Context, nameEn string) (int64, error) {
	return a.store.LookupOrCreateOrganization(ctx, nameEn)
}
