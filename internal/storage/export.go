package storage

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const journalSheet = "Journal"

var journalHeader = []interface{}{"ID", "Run", "Time", "Event", "Classroom", "Student", "Details", "Hash"}

// JournalExportXLSX writes entries to a spreadsheet with a single Journal sheet.
func JournalExportXLSX(entries []JournalEntry, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", journalSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(journalSheet, "A1", &journalHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.ID, e.RunID, e.Timestamp.Format(timeLayout), e.Event,
			e.Classroom, e.Student, e.Details, e.Hash,
		}
		if err := f.SetSheetRow(journalSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write journal entry %d: %w", e.ID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
