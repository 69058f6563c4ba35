package linkage

import (
	"testing"

	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
	"github.com/aimc-tcm/regseed/modules/onboarding/report"
)

func buildTestIndex(t *testing.T, names ...string) (*Index, *report.Report) {
	t.Helper()
	rows := make([]record.CompanyRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, record.CompanyRow{NameEn: n})
	}
	rep := report.New()
	return BuildIndex(rows, rep), rep
}

func TestBuildIndexAssignsDenseRanks(t *testing.T) {
	t.Parallel()

	idx, rep := buildTestIndex(t, "Acme Corp", "", "beta.co", "ACME-CORP", "Gamma Ltd")

	if idx.Len() != 3 {
		t.Fatalf("Len = %d, want 3", idx.Len())
	}
	for i, e := range idx.Entries() {
		if e.Rank != i+1 {
			t.Fatalf("entry %d has rank %d", i, e.Rank)
		}
	}
	if e, ok := idx.Lookup("acmecorp"); !ok || e.Rank != 1 || e.Row.NameEn != "Acme Corp" {
		t.Fatalf("duplicate should keep first-seen entry, got %+v ok=%v", e, ok)
	}
	if e, ok := idx.Lookup("gammaltd"); !ok || e.Rank != 3 {
		t.Fatalf("gammaltd rank = %+v ok=%v", e, ok)
	}

	if len(rep.SkippedCompanies) != 1 || rep.SkippedCompanies[0].RowIndex != 1 {
		t.Fatalf("skipped = %+v", rep.SkippedCompanies)
	}
	if len(rep.Duplicates) != 1 || rep.Duplicates[0].RowIndex != 3 || rep.Duplicates[0].Key != "acmecorp" {
		t.Fatalf("duplicates = %+v", rep.Duplicates)
	}
}

func TestSubstringMatcherFirstHitWins(t *testing.T) {
	t.Parallel()

	idx, _ := buildTestIndex(t, "Acme Holdings", "Acme")

	e, ok := SubstringMatcher{}.Match(idx, "acme")
	if !ok || e.Rank != 1 {
		t.Fatalf("expected first entry in discovery order, got %+v ok=%v", e, ok)
	}

	if _, ok := (SubstringMatcher{}).Match(idx, "zeta"); ok {
		t.Fatal("zeta should not match")
	}
	if _, ok := (SubstringMatcher{}).Match(idx, ""); ok {
		t.Fatal("empty key should not match")
	}
}

func TestRankedMatcherPrefersClosestCandidate(t *testing.T) {
	t.Parallel()

	idx, _ := buildTestIndex(t, "Acme Holdings", "Acme")

	e, ok := RankedMatcher{}.Match(idx, "acme")
	if !ok || e.Rank != 2 {
		t.Fatalf("expected exact-length candidate, got %+v ok=%v", e, ok)
	}
}

func TestMatcherFor(t *testing.T) {
	t.Parallel()

	if got := MatcherFor("ranked").Name(); got != "ranked" {
		t.Fatalf("MatcherFor(ranked) = %s", got)
	}
	if got := MatcherFor("substring").Name(); got != "substring" {
		t.Fatalf("MatcherFor(substring) = %s", got)
	}
	if got := MatcherFor("").Name(); got != "substring" {
		t.Fatalf("MatcherFor(\"\") = %s", got)
	}
}

func TestResolveCeoByRemarkOnly(t *testing.T) {
	t.Parallel()

	idx, _ := buildTestIndex(t, "Acme Corp", "beta.co")
	r := NewResolver(idx, nil)

	if e, ok := r.ResolveCeo(record.CeoRow{Remark: "Acme"}); !ok || e.Rank != 1 {
		t.Fatalf("fuzzy remark match failed: %+v ok=%v", e, ok)
	}

	// A CEO row must never fall back to its email domain.
	if _, ok := r.ResolveCeo(record.CeoRow{Remark: "Unknown Co", Email: "ceo@beta.co"}); ok {
		t.Fatal("CEO resolved through email, remark is the only signal")
	}
}

func TestResolveOrgAdminCompanyThenEmail(t *testing.T) {
	t.Parallel()

	idx, _ := buildTestIndex(t, "Acme Corp", "beta.co")
	r := NewResolver(idx, nil)

	if e, ok := r.ResolveOrgAdmin(record.OrgAdminRow{Company: "Beta Co"}); !ok || e.Rank != 2 {
		t.Fatalf("explicit company match failed: %+v ok=%v", e, ok)
	}
	if e, ok := r.ResolveOrgAdmin(record.OrgAdminRow{Email: "admin@beta.co"}); !ok || e.Rank != 2 {
		t.Fatalf("email-domain match failed: %+v ok=%v", e, ok)
	}
	// Explicit field wins over email when both are present.
	if e, ok := r.ResolveOrgAdmin(record.OrgAdminRow{Company: "Acme Corp", Email: "admin@beta.co"}); !ok || e.Rank != 1 {
		t.Fatalf("company field should win: %+v ok=%v", e, ok)
	}
	if _, ok := r.ResolveOrgAdmin(record.OrgAdminRow{Email: "x@nomatch.io"}); ok {
		t.Fatal("nomatch.io should not resolve")
	}
}

func TestResolveUserInRangeRanks(t *testing.T) {
	t.Parallel()

	names := []string{"Acme Corp", "beta.co", "Gamma Ltd"}
	idx, _ := buildTestIndex(t, names...)
	r := NewResolver(idx, nil)

	users := []record.UserRow{
		{Email: "a@acmecorp.com"},
		{Email: "b@beta.co"},
		{Company: "Gamma Ltd"},
	}
	seen := map[int]bool{}
	for _, u := range users {
		e, ok := r.ResolveUser(u)
		if !ok {
			t.Fatalf("user %+v did not resolve", u)
		}
		if e.Rank < 1 || e.Rank > len(names) {
			t.Fatalf("rank %d out of range", e.Rank)
		}
		seen[e.Rank] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct companies, got %v", seen)
	}
}
