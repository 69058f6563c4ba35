package record

// Source rows are the typed shape of one extracted spreadsheet row per entity
// kind. A column absent from the sheet is simply the zero value here; the
// assembler owns defaulting, so nothing is filled in at this layer.

type CompanyRow struct {
	NameEn              string
	NameTh              string
	Sector              string
	Code                string
	AddressEn           string
	AddressTh           string
	Phone               string
	ContactPersonNameEn string
	ContactPersonNameTh string
	ContactPersonPhone  string
	ContactPersonEmail  string
}

type CeoRow struct {
	FullNameEn string
	FullNameTh string
	PositionEn string
	PositionTh string
	Phone      string
	Email      string
	// Remark carries the company name; it is the only linkage signal a CEO
	// row has.
	Remark string
}

type OrgAdminRow struct {
	Company                string
	FullNameEn             string
	FullNameTh             string
	PositionEn             string
	PositionTh             string
	Phone                  string
	Email                  string
	EffectiveDate          string
	LineID                 string
	OpenChatName           string
	AllowOpenChat          string
	IsAllowOpenChatChanged string
}

type UserRow struct {
	Company      string
	Email        string
	Role         string
	FullNameEn   string
	FullNameTh   string
	PositionEn   string
	PositionTh   string
	LineID       string
	OpenChatName string
	Phone        string
	AccessType   string
	Status       string
}
