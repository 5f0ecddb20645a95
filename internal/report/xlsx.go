package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/Hami23p/Learnify/internal/directory"
)

const (
	summarySheet = "Summary"
	quizSheet    = "Quizzes"
)

// WriteXLSX saves p as a workbook at path with a per-course summary sheet
// and one row per quiz in a second sheet.
func WriteXLSX(path string, p directory.Progress) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(quizSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := f.SetSheetRow(summarySheet, "A1", &[]any{"Student", p.Student}); err != nil {
		return err
	}
	if err := f.SetSheetRow(summarySheet, "A3", &[]any{"Row", "Course", "Completed", "Quizzes", "Progress %"}); err != nil {
		return err
	}
	if err := f.SetSheetRow(quizSheet, "A1", &[]any{"Row", "Course", "Quiz", "Title", "Completed", "Best %"}); err != nil {
		return err
	}

	quizRow := 2
	for i, c := range p.Courses {
		cell, err := excelize.CoordinatesToCellName(1, 4+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &[]any{c.Slot + 1, c.Title, c.Completed, len(c.Quizzes), c.Percent}); err != nil {
			return err
		}
		for _, q := range c.Quizzes {
			cell, err := excelize.CoordinatesToCellName(1, quizRow)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(quizSheet, cell, &[]any{c.Slot + 1, c.Title, q.Index + 1, q.Title, q.Completed, q.Best}); err != nil {
				return err
			}
			quizRow++
		}
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 30); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
