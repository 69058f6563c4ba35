// Package linkage resolves every dependent spreadsheet row (CEO, org admin,
// user request) to exactly one company. Companies are indexed by normalized
// English name in sheet order; dependent rows are matched through a layered
// strategy chain where the first hit wins.
package linkage

import (
	"github.com/aimc-tcm/regseed/modules/onboarding/domain/identity"
	"github.com/aimc-tcm/regseed/modules/onboarding/domain/record"
	"github.com/aimc-tcm/regseed/modules/onboarding/report"
)

// Entry is one indexed company. Rank is the 1-based discovery position and
// doubles as the referenceId every dependent collection points at.
type Entry struct {
	Rank int
	Key  string
	Row  record.CompanyRow
}

// Index is the company identity index of a single run. It is built once,
// read-only afterwards, and preserves discovery order for every scan.
type Index struct {
	byKey map[string]*Entry
	order []*Entry
}

// BuildIndex indexes company rows by normalized name. Rows without a usable
// name are skipped; a row whose key was already taken keeps the first-seen
// entry, so ranks stay stable across re-runs of the same workbook. Both
// conditions are recorded on the report.
func BuildIndex(companies []record.CompanyRow, rep *report.Report) *Index {
	idx := &Index{byKey: make(map[string]*Entry, len(companies))}
	for i, row := range companies {
		key := identity.NormalizeName(row.NameEn)
		if key == "" {
			rep.AddSkippedCompany(i)
			continue
		}
		if _, taken := idx.byKey[key]; taken {
			rep.AddDuplicate(report.DuplicateIdentity{RowIndex: i, NameEn: row.NameEn, Key: key})
			continue
		}
		entry := &Entry{Rank: len(idx.order) + 1, Key: key, Row: row}
		idx.byKey[key] = entry
		idx.order = append(idx.order, entry)
	}
	return idx
}

// Lookup returns the entry for an exact normalized key.
func (idx *Index) Lookup(key string) (*Entry, bool) {
	if key == "" {
		return nil, false
	}
	e, ok := idx.byKey[key]
	return e, ok
}

// Entries returns the indexed companies in discovery order.
func (idx *Index) Entries() []*Entry {
	return idx.order
}

func (idx *Index) Len() int {
	return len(idx.order)
}
