// Package excel reads the onboarding workbook into ordered header-keyed rows.
// It is the only place the xlsx format is visible; everything downstream works
// on Row values.
package excel

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Row maps a header cell to the raw cell text of one sheet row. Cells that
// are empty or have no header are absent from the map.
type Row map[string]string

// Sheets holds every sheet of a workbook, keyed by canonical sheet name, with
// row order preserved.
type Sheets map[string][]Row

// Rows returns the rows of a sheet, or an empty slice when the sheet is
// absent. Absence is recoverable by contract, never an error here.
func (s Sheets) Rows(name string) []Row {
	if s == nil {
		return nil
	}
	return s[name]
}

// Has reports whether the workbook contained the sheet at all, letting the
// caller distinguish an absent sheet from an empty one.
func (s Sheets) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Canonical sheet names. Workbooks authored by hand use a few label variants
// for the same sheet; NormalizeSheetName folds them together.
const (
	SheetCompanyProfiles  = "RegistrationCompanyProfiles"
	SheetCeoProfiles      = "RegistrationCeoProfiles"
	SheetOrgAdminProfiles = "RegistrationOrgAdminProfiles"
	SheetUserRequestLists = "PortalUserRequestLists"
)

var sheetAliases = map[string]string{
	"Company Profile":            SheetCompanyProfiles,
	"Company":                    SheetCompanyProfiles,
	"Ceo Profile":                SheetCeoProfiles,
	"Ceo":                        SheetCeoProfiles,
	"Organization Admin Profile": SheetOrgAdminProfiles,
	"OrgAdmin":                   SheetOrgAdminProfiles,
	"User Request List":          SheetUserRequestLists,
	"UserList":                   SheetUserRequestLists,
}

// NormalizeSheetName maps a workbook sheet label to its canonical name.
// Unrecognized sheets keep their own name.
func NormalizeSheetName(name string) string {
	if canonical, ok := sheetAliases[strings.TrimSpace(name)]; ok {
		return canonical
	}
	return strings.TrimSpace(name)
}

// Load opens an xlsx workbook and converts every sheet into rows. The first
// row of each sheet is the header; later rows become Row values keyed by the
// trimmed header text.
func Load(path string) (Sheets, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := make(Sheets)
	for _, name := range f.GetSheetList() {
		raw, err := f.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %s", name)
		}
		sheets[NormalizeSheetName(name)] = rowsFromCells(raw)
	}
	return sheets, nil
}

func rowsFromCells(raw [][]string) []Row {
	if len(raw) == 0 {
		return []Row{}
	}
	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(Row, len(header))
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			row[header[i]] = cell
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
