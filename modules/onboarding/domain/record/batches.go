package record

// Collection names, matching the target schema tables.
const (
	CollectionReferences        = "RegistrationReferences"
	CollectionCompanyProfiles   = "RegistrationCompanyProfiles"
	CollectionCeoProfiles       = "RegistrationCeoProfiles"
	CollectionOrgAdminProfiles  = "RegistrationOrgAdminProfiles"
	CollectionChangeRequests    = "PortalUserChangeRequests"
	CollectionUserRequestLists  = "PortalUserRequestLists"
	CollectionUserProfiles      = "PortalUserProfiles"
	CollectionCompanyPortal     = "PortalCompanyProfiles"
	CollectionCeoPortal         = "PortalCeoProfiles"
)

// CollectionOrder is the foreign-key dependency order for inserts: references
// before everything that points at them, change requests before the user rows
// that carry their ids, portal projections last.
var CollectionOrder = []string{
	CollectionReferences,
	CollectionCompanyProfiles,
	CollectionCeoProfiles,
	CollectionOrgAdminProfiles,
	CollectionChangeRequests,
	CollectionUserRequestLists,
	CollectionUserProfiles,
	CollectionCompanyPortal,
	CollectionCeoPortal,
}

// Batches is one run's complete output: an ordered slice per collection,
// ready for a single atomic multi-collection insert.
type Batches struct {
	References       []RegistrationReference
	CompanyProfiles  []RegistrationCompanyProfile
	CeoProfiles      []RegistrationCeoProfile
	OrgAdminProfiles []RegistrationOrgAdminProfile
	ChangeRequests   []PortalUserChangeRequest
	UserRequestLists []PortalUserRequestList
	UserProfiles     []PortalUserProfile
	CompanyPortal    []PortalCompanyProfile
	CeoPortal        []PortalCeoProfile
}

// Counts returns the number of records per collection, keyed by collection
// name.
func (b *Batches) Counts() map[string]int {
	return map[string]int{
		CollectionReferences:       len(b.References),
		CollectionCompanyProfiles:  len(b.CompanyProfiles),
		CollectionCeoProfiles:      len(b.CeoProfiles),
		CollectionOrgAdminProfiles: len(b.OrgAdminProfiles),
		CollectionChangeRequests:   len(b.ChangeRequests),
		CollectionUserRequestLists: len(b.UserRequestLists),
		CollectionUserProfiles:     len(b.UserProfiles),
		CollectionCompanyPortal:    len(b.CompanyPortal),
		CollectionCeoPortal:        len(b.CeoPortal),
	}
}

// Total returns the number of records across all collections.
func (b *Batches) Total() int {
	total := 0
	for _, n := range b.Counts() {
		total += n
	}
	return total
}
