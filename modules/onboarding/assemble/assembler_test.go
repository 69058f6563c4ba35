package assemble

import (
	"testing"
	"time"

	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
	"github.com/aimc-tcm/regseed/modules/onboarding/linkage"
	"github.com/aimc-tcm/regseed/modules/onboarding/report"
	"github.com/aimc-tcm/regseed/modules/onboarding/synthesis"
)

var testNow = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func newTestAssembler(t *testing.T, names ...string) (*Assembler, *linkage.Index, *report.Report) {
	t.Helper()
	rows := make([]record.CompanyRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, record.CompanyRow{NameEn: n})
	}
	rep := report.New()
	idx := linkage.BuildIndex(rows, rep)

	orgIDs := make(map[int]int64)
	for _, e := range idx.Entries() {
		orgIDs[e.Rank] = int64(e.Rank)
	}
	synth := &synthesis.Result{OrganizationIDs: orgIDs}

	return New(linkage.NewResolver(idx, nil), synth, rep, testNow), idx, rep
}

func TestCompaniesCarryRankAsReferenceID(t *testing.T) {
	t.Parallel()

	a, idx, _ := newTestAssembler(t, "Acme Corp", "beta.co")
	got := a.Companies(idx)
	if len(got) != 2 {
		t.Fatalf("companies = %d", len(got))
	}
	if got[0].ReferenceID != 1 || got[1].ReferenceID != 2 {
		t.Fatalf("reference ids = %d, %d", got[0].ReferenceID, got[1].ReferenceID)
	}
	if got[0].NameEn != "Acme Corp" || !got[0].CreatedAt.Equal(testNow) {
		t.Fatalf("company 0 = %+v", got[0])
	}
}

func TestCeosDropUnresolvableWithFailure(t *testing.T) {
	t.Parallel()

	a, _, rep := newTestAssembler(t, "Acme Corp")
	got := a.Ceos([]record.CeoRow{
		{FullNameEn: "Jane", Remark: "Acme"},
		{FullNameEn: "John", Remark: "Nowhere Inc"},
	})
	if len(got) != 1 || got[0].ReferenceID != 1 || got[0].FullNameEn != "Jane" {
		t.Fatalf("ceos = %+v", got)
	}
	if len(rep.LinkFailures) != 1 {
		t.Fatalf("failures = %+v", rep.LinkFailures)
	}
	f := rep.LinkFailures[0]
	if f.Entity != report.EntityCeo || f.RowIndex != 1 || f.Remark != "Nowhere Inc" {
		t.Fatalf("failure = %+v", f)
	}
}

func TestOrgAdminDefaults(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestAssembler(t, "beta.co")
	got := a.OrgAdmins([]record.OrgAdminRow{{
		FullNameEn:    "Admin",
		Email:         "admin@beta.co",
		EffectiveDate: "2026-01-15",
		LineID:        "line-1",
	}})
	if len(got) != 1 {
		t.Fatalf("admins = %+v", got)
	}
	adm := got[0]
	if adm.AllowOpenChat != "NO" {
		t.Fatalf("allowOpenChat = %q", adm.AllowOpenChat)
	}
	if adm.IsAllowOpenChatChanged {
		t.Fatal("isAllowOpenChatChanged should default to false")
	}
	if adm.LineID == nil || *adm.LineID != "line-1" {
		t.Fatalf("lineId = %v", adm.LineID)
	}
	if adm.OpenChatName != nil {
		t.Fatalf("openChatName = %v", adm.OpenChatName)
	}
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if !adm.EffectiveDate.Equal(want) {
		t.Fatalf("effectiveDate = %v", adm.EffectiveDate)
	}
}

func TestOrgAdminEffectiveDateFallsBackToRunClock(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestAssembler(t, "beta.co")
	got := a.OrgAdmins([]record.OrgAdminRow{{Email: "admin@beta.co", EffectiveDate: "soon"}})
	if len(got) != 1 || !got[0].EffectiveDate.Equal(testNow) {
		t.Fatalf("effectiveDate = %+v", got)
	}
}

func TestUsersEnumDefaultsAndRoleTable(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestAssembler(t, "beta.co")
	got := a.Users([]record.UserRow{
		{Email: "u@beta.co", AccessType: "", Role: "User"},
		{Email: "p@beta.co", AccessType: "BOTH", Status: "UPDATE", Role: "Publisher"},
		{Email: "x@beta.co", Role: "Manager"},
	})
	if len(got) != 3 {
		t.Fatalf("users = %+v", got)
	}
	if got[0].AccessType != record.AccessPortal || got[0].Status != record.StatusAdd {
		t.Fatalf("defaults not applied: %+v", got[0])
	}
	if got[1].AccessType != record.AccessBoth || got[1].Status != record.StatusUpdate {
		t.Fatalf("explicit enums lost: %+v", got[1])
	}
	if got[0].RoleID != 3 || got[1].RoleID != 4 || got[2].RoleID != 3 {
		t.Fatalf("role ids = %d, %d, %d", got[0].RoleID, got[1].RoleID, got[2].RoleID)
	}
	if got[0].RequestID != 1 {
		t.Fatalf("requestId = %d", got[0].RequestID)
	}
}

func TestPortalProjectionsAreConsistent(t *testing.T) {
	t.Parallel()

	a, idx, _ := newTestAssembler(t, "Acme Corp", "beta.co")

	companies := a.Companies(idx)
	portalCompanies := a.PortalCompanies(companies)
	if len(portalCompanies) != 2 {
		t.Fatalf("portal companies = %d", len(portalCompanies))
	}
	for i, pc := range portalCompanies {
		if pc.ReferenceID != i+1 || pc.OrganizationID != int64(i+1) {
			t.Fatalf("portal company %d: ref=%d org=%d", i, pc.ReferenceID, pc.OrganizationID)
		}
		if !pc.LastReviewedAt.Equal(testNow) {
			t.Fatalf("lastReviewedAt = %v", pc.LastReviewedAt)
		}
	}

	ceos := a.Ceos([]record.CeoRow{{FullNameEn: "Jane", Remark: "Acme Corp"}})
	portalCeos := a.PortalCeos(ceos)
	if len(portalCeos) != 1 || portalCeos[0].OrganizationID != 1 {
		t.Fatalf("portal ceos = %+v", portalCeos)
	}

	users := a.Users([]record.UserRow{
		{Email: "a@acmecorp.com", Role: "User"},
		{Email: "b@beta.co", Role: "User"},
	})
	profiles := a.PortalUsers(users)
	if len(profiles) != 2 {
		t.Fatalf("profiles = %+v", profiles)
	}
	for i, p := range profiles {
		if p.UserID != i+1 {
			t.Fatalf("user ids not dense: %+v", profiles)
		}
		if p.AcceptConsentAt != nil {
			t.Fatal("acceptConsentAt should be nil")
		}
	}
}
