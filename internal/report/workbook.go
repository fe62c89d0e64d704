package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/congestionscan/internal/model"
)

// WorkbookWriter persists reports as spreadsheet workbooks.
//
// Each report becomes one .xlsx file named after the near network's display
// name, with one sheet per far network that had detected events. The header
// occupies row 1 of each sheet and data rows follow, matching the row
// numbering the pipeline accumulates (header at index 0, data 1-based).
type WorkbookWriter struct {
	// dir is the directory workbooks are written into.
	dir string
}

// NewWorkbookWriter creates a writer that saves workbooks into dir.
// The directory must already exist.
func NewWorkbookWriter(dir string) *WorkbookWriter {
	return &WorkbookWriter{dir: dir}
}

// Write saves the report as a workbook and returns the written file path.
//
// A report without any sheets is not written: the returned path is empty
// and the absence of the file is not an error. Callers normally guard with
// Report.HasEvents, but the writer enforces the rule as well so an empty
// workbook can never appear on disk.
func (w *WorkbookWriter) Write(report *model.Report) (string, error) {
	if !report.HasEvents() {
		return "", nil
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // In-memory workbook, nothing to flush

	seen := make(map[string]int)
	for i, sheet := range report.Sheets {
		name := uniqueSheetName(sanitizeSheetName(sheet.Far.Name), seen)

		// excelize starts every workbook with a default "Sheet1";
		// the first report sheet takes its place.
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return "", fmt.Errorf("failed to name sheet %q: %w", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return "", fmt.Errorf("failed to add sheet %q: %w", name, err)
			}
		}

		if err := writeSheet(f, name, sheet); err != nil {
			return "", err
		}
	}

	path := filepath.Join(w.dir, sanitizeFileName(report.Near.Name)+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	return path, nil
}

// writeSheet fills one worksheet: header row followed by the event rows.
func writeSheet(f *excelize.File, name string, sheet *model.Sheet) error {
	if err := setRow(f, name, 1, model.SheetHeader); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		values := []string{row.Time, row.Congestion, row.DayLink, row.MonthLink}
		// Spreadsheet rows are 1-based and row 1 is the header.
		if err := setRow(f, name, i+2, values); err != nil {
			return err
		}
	}

	return nil
}

// setRow writes one row of string cells starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %q: %w", row, sheet, err)
	}
	return nil
}

// sheetNameReplacer strips the characters the XLSX format forbids in
// worksheet names.
var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")",
)

// sanitizeSheetName makes a display name usable as a worksheet name.
// Worksheet names are limited to 31 characters; truncation counts runes so
// a multibyte name is never cut mid-rune.
func sanitizeSheetName(name string) string {
	name = sheetNameReplacer.Replace(name)
	if name == "" {
		name = "unnamed"
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

// uniqueSheetName disambiguates duplicate worksheet names.
// Two far networks can resolve to the same display name; worksheet names
// must be unique within a workbook.
func uniqueSheetName(name string, seen map[string]int) string {
	seen[name]++
	if seen[name] == 1 {
		return name
	}

	suffix := fmt.Sprintf(" (%d)", seen[name])
	if r := []rune(name); len(r)+len(suffix) > 31 {
		name = string(r[:31-len(suffix)])
	}
	return name + suffix
}

// sanitizeFileName makes a display name usable as a file name.
// Path separators would otherwise scatter workbooks into subdirectories.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, string(filepath.Separator), "-")
	name = strings.ReplaceAll(name, "/", "-")
	if name == "" {
		name = "unnamed"
	}
	return name
}
