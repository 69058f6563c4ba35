package excel

import "github.com/aimc-tcm/regseed/modules/onboarding/domain/record"

// ColumnMapping declares which sheet column feeds which target field.
type ColumnMapping map[string]string

// Extract copies the mapped columns of every row into a fresh row keyed by
// target field. Source columns absent from a row are omitted, not defaulted;
// defaulting belongs to the assembler. Pure transform.
func Extract(rows []Row, mapping ColumnMapping) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		mapped := make(Row, len(mapping))
		for field, column := range mapping {
			if v, ok := row[column]; ok {
				mapped[field] = v
			}
		}
		out = append(out, mapped)
	}
	return out
}

// Column mappings for the onboarding workbook template. Target field on the
// left, workbook header on the right.
var (
	companyColumns = ColumnMapping{
		"nameEn":              "nameEn",
		"nameTh":              "nameTh",
		"sector":              "sector",
		"code":                "code",
		"addressEn":           "addressEn",
		"addressTh":           "addressTh",
		"phone":               "phone",
		"contactPersonNameEn": "contactPersonNameEn",
		"contactPersonNameTh": "contactPersonNameTh",
		"contactPersonPhone":  "contactPersonPhone",
		"contactPersonEmail":  "contactPersonEmail",
	}

	ceoColumns = ColumnMapping{
		"fullNameEn": "fullNameEn",
		"fullNameTh": "fullNameTh",
		"positionEn": "positionEn",
		"positionTh": "positionTh",
		"phone":      "phone",
		"email":      "email",
		"remark":     "Remark",
	}

	orgAdminColumns = ColumnMapping{
		"company":                "Company",
		"fullNameEn":             "fullNameEn",
		"fullNameTh":             "fullNameTh",
		"positionEn":             "positionEn",
		"positionTh":             "positionTh",
		"phone":                  "phone",
		"email":                  "email",
		"effectiveDate":          "EffectiveDate",
		"lineId":                 "lineId",
		"openChatName":           "openChatName",
		"allowOpenChat":          "allowOpenChat",
		"isAllowOpenChatChanged": "isAllowOpenChatChanged",
	}

	userColumns = ColumnMapping{
		"company":      "Company",
		"email":        "email",
		"role":         "role",
		"fullNameEn":   "fullNameEn",
		"fullNameTh":   "fullNameTh",
		"positionEn":   "positionEn",
		"positionTh":   "positionTh",
		"lineId":       "lineId",
		"openChatName": "openChatName",
		"phone":        "phone",
		"accessType":   "accessType",
		"status":       "status",
	}
)

// CompanyRows extracts the company sheet into typed source rows.
func CompanyRows(sheets Sheets) []record.CompanyRow {
	mapped := Extract(sheets.Rows(SheetCompanyProfiles), companyColumns)
	out := make([]record.CompanyRow, 0, len(mapped))
	for _, m := range mapped {
		out = append(out, record.CompanyRow{
			NameEn:              m["nameEn"],
			NameTh:              m["nameTh"],
			Sector:              m["sector"],
			Code:                m["code"],
			AddressEn:           m["addressEn"],
			AddressTh:           m["addressTh"],
			Phone:               m["phone"],
			ContactPersonNameEn: m["contactPersonNameEn"],
			ContactPersonNameTh: m["contactPersonNameTh"],
			ContactPersonPhone:  m["contactPersonPhone"],
			ContactPersonEmail:  m["contactPersonEmail"],
		})
	}
	return out
}

// CeoRows extracts the CEO sheet into typed source rows.
func CeoRows(sheets Sheets) []record.CeoRow {
	mapped := Extract(sheets.Rows(SheetCeoProfiles), ceoColumns)
	out := make([]record.CeoRow, 0, len(mapped))
	for _, m := range mapped {
		out = append(out, record.CeoRow{
			FullNameEn: m["fullNameEn"],
			FullNameTh: m["fullNameTh"],
			PositionEn: m["positionEn"],
			PositionTh: m["positionTh"],
			Phone:      m["phone"],
			Email:      m["email"],
			Remark:     m["remark"],
		})
	}
	return out
}

// OrgAdminRows extracts the organization-admin sheet into typed source rows.
func OrgAdminRows(sheets Sheets) []record.OrgAdminRow {
	mapped := Extract(sheets.Rows(SheetOrgAdminProfiles), orgAdminColumns)
	out := make([]record.OrgAdminRow, 0, len(mapped))
	for _, m := range mapped {
		out = append(out, record.OrgAdminRow{
			Company:                m["company"],
			FullNameEn:             m["fullNameEn"],
			FullNameTh:             m["fullNameTh"],
			PositionEn:             m["positionEn"],
			PositionTh:             m["positionTh"],
			Phone:                  m["phone"],
			Email:                  m["email"],
			EffectiveDate:          m["effectiveDate"],
			LineID:                 m["lineId"],
			OpenChatName:           m["openChatName"],
			AllowOpenChat:          m["allowOpenChat"],
			IsAllowOpenChatChanged: m["isAllowOpenChatChanged"],
		})
	}
	return out
}

// UserRows extracts the user-request sheet into typed source rows.
func UserRows(sheets Sheets) []record.UserRow {
	mapped := Extract(sheets.Rows(SheetUserRequestLists), userColumns)
	out := make([]record.UserRow, 0, len(mapped))
	for _, m := range mapped {
		out = append(out, record.UserRow{
			Company:      m["company"],
			Email:        m["email"],
			Role:         m["role"],
			FullNameEn:   m["fullNameEn"],
			FullNameTh:   m["fullNameTh"],
			PositionEn:   m["positionEn"],
			PositionTh:   m["positionTh"],
			LineID:       m["lineId"],
			OpenChatName: m["openChatName"],
			Phone:        m["phone"],
			AccessType:   m["accessType"],
			Status:       m["status"],
		})
	}
	return out
}
