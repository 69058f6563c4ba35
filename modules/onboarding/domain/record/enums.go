package record

// AccessType is the portal access granted to a requested user.
type AccessType string

const (
	AccessBoth     AccessType = "BOTH"
	AccessOpenChat AccessType = "OPENCHAT"
	AccessPortal   AccessType = "PORTAL"
)

// ChangeStatus is the change action requested for a user row.
type ChangeStatus string

const (
	StatusAdd      ChangeStatus = "ADD"
	StatusDelete   ChangeStatus = "DELETE"
	StatusUnchange ChangeStatus = "UNCHANGE"
	StatusUpdate   ChangeStatus = "UPDATE"
)

// ReferenceStatus is the approval workflow state of an onboarding reference.
type ReferenceStatus string

const (
	ReferencePendingCEOApproval ReferenceStatus = "PENDING_CEO_APPROVAL"
)

// RequestType is the kind of onboarding request a reference represents.
type RequestType string

const (
	RequestCreate RequestType = "CREATE"
)

// ChangeRequestType is the origin of a user change request batch.
type ChangeRequestType string

const (
	ChangeRequestInternal ChangeRequestType = "INTERNAL"
)

// ParseAccessType maps raw cell input onto the closed AccessType set.
// Anything unrecognized, including the empty cell, becomes AccessPortal.
func ParseAccessType(raw string) AccessType {
	switch AccessType(raw) {
	case AccessBoth, AccessOpenChat, AccessPortal:
		return AccessType(raw)
	default:
		return AccessPortal
	}
}

// ParseChangeStatus maps raw cell input onto the closed ChangeStatus set.
// Anything unrecognized, including the empty cell, becomes StatusAdd.
func ParseChangeStatus(raw string) ChangeStatus {
	switch ChangeStatus(raw) {
	case StatusAdd, StatusDelete, StatusUnchange, StatusUpdate:
		return ChangeStatus(raw)
	default:
		return StatusAdd
	}
}

// Role ids are a closed contract with the portal schema, never inferred.
const (
	RoleIDUser      = 3
	RoleIDPublisher = 4
	defaultRoleID   = RoleIDUser
)

// RoleIDFor maps a spreadsheet role label to its portal role id.
func RoleIDFor(role string) int {
	switch role {
	case "User":
		return RoleIDUser
	case "Publisher":
		return RoleIDPublisher
	default:
		return defaultRoleID
	}
}
