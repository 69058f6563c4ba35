// Package record defines the flat persisted-record shapes handed to the
// store, the closed enumerations they use, and the typed source rows the
// extractor produces. Records are plain data; they are built once by the
// assembler and never mutated afterwards.
package record

import "time"

// RegistrationReference is the pending-approval workflow record, one per
// company, created before any dependent row can be attached.
type RegistrationReference struct {
	ID                  int
	Code                string
	Status              ReferenceStatus
	RequestType         RequestType
	ContactPersonPhone  string
	ContactPersonEmail  string
	ContactPersonNameEn string
	ContactPersonNameTh string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type RegistrationCompanyProfile struct {
	NameTh      string
	NameEn      string
	Sector      string
	Code        string
	AddressTh   string
	AddressEn   string
	Phone       string
	ReferenceID int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RegistrationCeoProfile struct {
	FullNameTh  string
	FullNameEn  string
	PositionTh  string
	PositionEn  string
	Phone       string
	Email       string
	ReferenceID int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RegistrationOrgAdminProfile struct {
	FullNameTh             string
	FullNameEn             string
	PositionTh             string
	PositionEn             string
	Phone                  string
	Email                  string
	EffectiveDate          time.Time
	ReferenceID            int
	AllowOpenChat          string
	LineID                 *string
	OpenChatName           *string
	IsAllowOpenChatChanged bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// PortalUserChangeRequest batches the user-profile changes of one company and
// references both the registration reference and the portal organization.
type PortalUserChangeRequest struct {
	ID             int
	Code           string
	Type           ChangeRequestType
	ReferenceID    int
	OrganizationID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PortalUserRequestList struct {
	RequestID    int
	Email        string
	RoleID       int
	FullNameEn   string
	FullNameTh   string
	PositionEn   string
	PositionTh   string
	LineID       *string
	OpenChatName *string
	Phone        string
	AccessType   AccessType
	Status       ChangeStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PortalUserProfile struct {
	UserID          int
	FullNameEn      string
	FullNameTh      string
	PositionEn      string
	PositionTh      string
	LineID          *string
	OpenChatName    *string
	Phone           string
	AcceptConsentAt *time.Time
	EffectiveDate   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PortalCompanyProfile struct {
	NameTh         string
	NameEn         string
	Sector         string
	Code           string
	AddressTh      string
	AddressEn      string
	Phone          string
	ReferenceID    int
	OrganizationID int64
	LastReviewedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PortalCeoProfile struct {
	FullNameTh     string
	FullNameEn     string
	PositionTh     string
	PositionEn     string
	Phone          string
	Email          string
	OrganizationID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
