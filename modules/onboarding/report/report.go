// Package report collects the recoverable conditions of one pipeline run into
// a structure callers can inspect, instead of scattering them across log
// lines. A run with entries here still produced output; the caller decides
// whether partially linked output is acceptable.
package report

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind names the sheet a reported row came from.
type EntityKind string

const (
	EntityCompany  EntityKind = "company"
	EntityCeo      EntityKind = "ceo"
	EntityOrgAdmin EntityKind = "org_admin"
	EntityUser     EntityKind = "user"
)

// ParseGap records a sheet that the workbook did not contain.
type ParseGap struct {
	Sheet string `json:"sheet"`
}

// LinkFailure records a dependent row that no strategy could attach to a
// company. The row is excluded from every output collection.
type LinkFailure struct {
	Entity EntityKind `json:"entity"`
	// RowIndex is the 0-based position within the source sheet.
	RowIndex int    `json:"rowIndex"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Remark   string `json:"remark,omitempty"`
}

// DuplicateIdentity records a company row whose normalized name collided with
// an earlier row. The earlier row keeps the identity.
type DuplicateIdentity struct {
	RowIndex int    `json:"rowIndex"`
	NameEn   string `json:"nameEn"`
	Key      string `json:"key"`
}

// SkippedCompany records a company row with no usable name at all.
type SkippedCompany struct {
	RowIndex int `json:"rowIndex"`
}

type Report struct {
	RunID       uuid.UUID      `json:"runId"`
	StartedAt   time.Time      `json:"startedAt"`
	FinishedAt  time.Time      `json:"finishedAt"`
	DryRun      bool           `json:"dryRun"`
	RecordCount map[string]int `json:"recordCount"`

	ParseGaps        []ParseGap          `json:"parseGaps,omitempty"`
	LinkFailures     []LinkFailure       `json:"linkFailures,omitempty"`
	Duplicates       []DuplicateIdentity `json:"duplicates,omitempty"`
	SkippedCompanies []SkippedCompany    `json:"skippedCompanies,omitempty"`
}

func New() *Report {
	return &Report{
		RunID:       uuid.New(),
		StartedAt:   time.Now().UTC(),
		RecordCount: make(map[string]int),
	}
}

func (r *Report) AddParseGap(sheet string) {
	r.ParseGaps = append(r.ParseGaps, ParseGap{Sheet: sheet})
}

func (r *Report) AddLinkFailure(f LinkFailure) {
	r.LinkFailures = append(r.LinkFailures, f)
}

func (r *Report) AddDuplicate(d DuplicateIdentity) {
	r.Duplicates = append(r.Duplicates, d)
}

func (r *Report) AddSkippedCompany(rowIndex int) {
	r.SkippedCompanies = append(r.SkippedCompanies, SkippedCompany{RowIndex: rowIndex})
}

// Clean reports whether the run completed without any recoverable condition.
func (r *Report) Clean() bool {
	return len(r.ParseGaps) == 0 &&
		len(r.LinkFailures) == 0 &&
		len(r.Duplicates) == 0 &&
		len(r.SkippedCompanies) == 0
}
