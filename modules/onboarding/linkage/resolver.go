package linkage

import (
	"github.com/aimc-tcm/regseed/modules/onboarding/domain/identity"
	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
)

// Resolver runs the per-row strategy chain against a built index:
//
//  1. exact lookup of the explicit company field
//  2. fuzzy scan of the explicit company field
//  3. exact lookup, then fuzzy scan, of the email-domain key
//
// CEO rows are the exception: their only signal is the free-text remark, and
// they are never matched by email domain.
type Resolver struct {
	idx     *Index
	matcher Matcher
}

func NewResolver(idx *Index, matcher Matcher) *Resolver {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	return &Resolver{idx: idx, matcher: matcher}
}

// resolveKey tries exact lookup first, then the configured fuzzy strategy.
func (r *Resolver) resolveKey(key string) (*Entry, bool) {
	if key == "" {
		return nil, false
	}
	if e, ok := r.idx.Lookup(key); ok {
		return e, true
	}
	return r.matcher.Match(r.idx, key)
}

func (r *Resolver) resolveCompanyThenEmail(company, email string) (*Entry, bool) {
	if e, ok := r.resolveKey(identity.NormalizeName(company)); ok {
		return e, true
	}
	return r.resolveKey(identity.CompanyKeyFromEmail(email))
}

// ResolveCeo links a CEO row through its remark field.
func (r *Resolver) ResolveCeo(row record.CeoRow) (*Entry, bool) {
	return r.resolveKey(identity.NormalizeName(row.Remark))
}

// ResolveOrgAdmin links an org-admin row through its company field, falling
// back to its email domain.
func (r *Resolver) ResolveOrgAdmin(row record.OrgAdminRow) (*Entry, bool) {
	return r.resolveCompanyThenEmail(row.Company, row.Email)
}

// ResolveUser links a user-request row through its company field, falling
// back to its email domain.
func (r *Resolver) ResolveUser(row record.UserRow) (*Entry, bool) {
	return r.resolveCompanyThenEmail(row.Company, row.Email)
}
