package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WorkbookBuilder assembles an in-memory workbook for parser tests.
type WorkbookBuilder struct {
	t     *testing.T
	f     *excelize.File
	sheet string
}

// NewWorkbookBuilder creates a workbook whose only sheet is named sheet.
func NewWorkbookBuilder(t *testing.T, sheet string) *WorkbookBuilder {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("renaming default sheet: %v", err)
	}
	return &WorkbookBuilder{t: t, f: f, sheet: sheet}
}

// Set writes v at axis, e.g. "C3".
func (b *WorkbookBuilder) Set(axis string, v any) *WorkbookBuilder {
	b.t.Helper()
	if err := b.f.SetCellValue(b.sheet, axis, v); err != nil {
		b.t.Fatalf("setting %s: %v", axis, err)
	}
	return b
}

// Row writes values left to right starting at axis.
func (b *WorkbookBuilder) Row(axis string, values ...any) *WorkbookBuilder {
	b.t.Helper()
	if err := b.f.SetSheetRow(b.sheet, axis, &values); err != nil {
		b.t.Fatalf("setting row at %s: %v", axis, err)
	}
	return b
}

// Merge merges the rectangle from start to end.
func (b *WorkbookBuilder) Merge(start, end string) *WorkbookBuilder {
	b.t.Helper()
	if err := b.f.MergeCell(b.sheet, start, end); err != nil {
		b.t.Fatalf("merging %s:%s: %v", start, end, err)
	}
	return b
}

// File returns the underlying workbook.
func (b *WorkbookBuilder) File() *excelize.File {
	return b.f
}

// Save writes the workbook into a per-test temp directory and returns its path.
func (b *WorkbookBuilder) Save() string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), "schedule.xlsx")
	if err := b.f.SaveAs(path); err != nil {
		b.t.Fatalf("saving workbook: %v", err)
	}
	return path
}
