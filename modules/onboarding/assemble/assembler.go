// Package assemble merges linked source rows with defaults and the foreign
// keys produced upstream into the flat records the store persists. Defaulting
// happens exactly once, here: text fields fall back to "", optional identity
// fields to nil, enumerations to their documented sentinel.
package assemble

import (
	"strings"
	"time"

	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
	"github.com/aimc-tcm/regseed/modules/onboarding/linkage"
	"github.com/aimc-tcm/regseed/modules/onboarding/report"
	"github.com/aimc-tcm/regseed/modules/onboarding/synthesis"
)

const defaultAllowOpenChat = "NO"

// Accepted spellings of a spreadsheet date cell, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	time.RFC3339,
}

type Assembler struct {
	resolver *linkage.Resolver
	synth    *synthesis.Result
	rep      *report.Report
	now      time.Time
}

func New(resolver *linkage.Resolver, synth *synthesis.Result, rep *report.Report, now time.Time) *Assembler {
	return &Assembler{resolver: resolver, synth: synth, rep: rep, now: now}
}

// Companies assembles one profile per indexed company, in rank order, with
// referenceId equal to the rank.
func (a *Assembler) Companies(idx *linkage.Index) []record.RegistrationCompanyProfile {
	out := make([]record.RegistrationCompanyProfile, 0, idx.Len())
	for _, e := range idx.Entries() {
		out = append(out, record.RegistrationCompanyProfile{
			NameTh:      e.Row.NameTh,
			NameEn:      e.Row.NameEn,
			Sector:      e.Row.Sector,
			Code:        e.Row.Code,
			AddressTh:   e.Row.AddressTh,
			AddressEn:   e.Row.AddressEn,
			Phone:       e.Row.Phone,
			ReferenceID: e.Rank,
			CreatedAt:   a.now,
			UpdatedAt:   a.now,
		})
	}
	return out
}

// Ceos assembles every CEO row that resolves to a company. Unresolvable rows
// are reported and excluded.
func (a *Assembler) Ceos(rows []record.CeoRow) []record.RegistrationCeoProfile {
	out := make([]record.RegistrationCeoProfile, 0, len(rows))
	for i, row := range rows {
		e, ok := a.resolver.ResolveCeo(row)
		if !ok {
			a.rep.AddLinkFailure(report.LinkFailure{
				Entity:   report.EntityCeo,
				RowIndex: i,
				Remark:   row.Remark,
			})
			continue
		}
		out = append(out, record.RegistrationCeoProfile{
			FullNameTh:  row.FullNameTh,
			FullNameEn:  row.FullNameEn,
			PositionTh:  row.PositionTh,
			PositionEn:  row.PositionEn,
			Phone:       row.Phone,
			Email:       row.Email,
			ReferenceID: e.Rank,
			CreatedAt:   a.now,
			UpdatedAt:   a.now,
		})
	}
	return out
}

// OrgAdmins assembles every org-admin row that resolves to a company.
func (a *Assembler) OrgAdmins(rows []record.OrgAdminRow) []record.RegistrationOrgAdminProfile {
	out := make([]record.RegistrationOrgAdminProfile, 0, len(rows))
	for i, row := range rows {
		e, ok := a.resolver.ResolveOrgAdmin(row)
		if !ok {
			a.rep.AddLinkFailure(report.LinkFailure{
				Entity:   report.EntityOrgAdmin,
				RowIndex: i,
				Company:  row.Company,
				Email:    row.Email,
			})
			continue
		}
		allowOpenChat := row.AllowOpenChat
		if allowOpenChat == "" {
			allowOpenChat = defaultAllowOpenChat
		}
		out = append(out, record.RegistrationOrgAdminProfile{
			FullNameTh:             row.FullNameTh,
			FullNameEn:             row.FullNameEn,
			PositionTh:             row.PositionTh,
			PositionEn:             row.PositionEn,
			Phone:                  row.Phone,
			Email:                  row.Email,
			EffectiveDate:          a.parseDate(row.EffectiveDate),
			ReferenceID:            e.Rank,
			AllowOpenChat:          allowOpenChat,
			LineID:                 optional(row.LineID),
			OpenChatName:           optional(row.OpenChatName),
			IsAllowOpenChatChanged: parseFlag(row.IsAllowOpenChatChanged),
			CreatedAt:              a.now,
			UpdatedAt:              a.now,
		})
	}
	return out
}

// Users assembles every user-request row that resolves to a company. The
// requestId is the company rank, which ties the row to that company's change
// request.
func (a *Assembler) Users(rows []record.UserRow) []record.PortalUserRequestList {
	out := make([]record.PortalUserRequestList, 0, len(rows))
	for i, row := range rows {
		e, ok := a.resolver.ResolveUser(row)
		if !ok {
			a.rep.AddLinkFailure(report.LinkFailure{
				Entity:   report.EntityUser,
				RowIndex: i,
				Company:  row.Company,
				Email:    row.Email,
			})
			continue
		}
		out = append(out, record.PortalUserRequestList{
			RequestID:    e.Rank,
			Email:        row.Email,
			RoleID:       record.RoleIDFor(row.Role),
			FullNameEn:   row.FullNameEn,
			FullNameTh:   row.FullNameTh,
			PositionEn:   row.PositionEn,
			PositionTh:   row.PositionTh,
			LineID:       optional(row.LineID),
			OpenChatName: optional(row.OpenChatName),
			Phone:        row.Phone,
			AccessType:   record.ParseAccessType(row.AccessType),
			Status:       record.ParseChangeStatus(row.Status),
			CreatedAt:    a.now,
			UpdatedAt:    a.now,
		})
	}
	return out
}

// PortalCompanies projects the assembled company profiles onto the portal
// side. Pure projection: no linkage is re-run, the organization id comes from
// the synthesis result keyed by the profile's referenceId.
func (a *Assembler) PortalCompanies(companies []record.RegistrationCompanyProfile) []record.PortalCompanyProfile {
	out := make([]record.PortalCompanyProfile, 0, len(companies))
	for _, c := range companies {
		out = append(out, record.PortalCompanyProfile{
			NameTh:         c.NameTh,
			NameEn:         c.NameEn,
			Sector:         c.Sector,
			Code:           c.Code,
			AddressTh:      c.AddressTh,
			AddressEn:      c.AddressEn,
			Phone:          c.Phone,
			ReferenceID:    c.ReferenceID,
			OrganizationID: a.synth.OrganizationIDs[c.ReferenceID],
			LastReviewedAt: a.now,
			CreatedAt:      a.now,
			UpdatedAt:      a.now,
		})
	}
	return out
}

// PortalCeos projects the assembled CEO profiles onto the portal side.
func (a *Assembler) PortalCeos(ceos []record.RegistrationCeoProfile) []record.PortalCeoProfile {
	out := make([]record.PortalCeoProfile, 0, len(ceos))
	for _, c := range ceos {
		out = append(out, record.PortalCeoProfile{
			FullNameTh:     c.FullNameTh,
			FullNameEn:     c.FullNameEn,
			PositionTh:     c.PositionTh,
			PositionEn:     c.PositionEn,
			Phone:          c.Phone,
			Email:          c.Email,
			OrganizationID: a.synth.OrganizationIDs[c.ReferenceID],
			CreatedAt:      a.now,
			UpdatedAt:      a.now,
		})
	}
	return out
}

// PortalUsers projects the assembled user-request rows onto portal user
// profiles, assigning dense 1-based user ids in list order.
func (a *Assembler) PortalUsers(users []record.PortalUserRequestList) []record.PortalUserProfile {
	out := make([]record.PortalUserProfile, 0, len(users))
	for i, u := range users {
		out = append(out, record.PortalUserProfile{
			UserID:       i + 1,
			FullNameEn:   u.FullNameEn,
			FullNameTh:   u.FullNameTh,
			PositionEn:   u.PositionEn,
			PositionTh:   u.PositionTh,
			LineID:       u.LineID,
			OpenChatName: u.OpenChatName,
			Phone:        u.Phone,
			CreatedAt:    a.now,
			UpdatedAt:    a.now,
		})
	}
	return out
}

func (a *Assembler) parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return a.now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return a.now
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func parseFlag(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1", "TRUE", "YES", "Y":
		return true
	default:
		return false
	}
}
