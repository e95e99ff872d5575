package store

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// ListWeeklyCosts returns every weekly cost entry for a job, most recent
// week first. A job with no entries yields an empty slice, not an error.
func (s *Store) ListWeeklyCosts(jobID string) ([]WeeklyCostEntry, error) {
	records, err := s.app.FindRecordsByFilter(
		"weekly_costs",
		"job = {:job}",
		"-week_ending", 0, 0,
		map[string]any{"job": jobID},
	)
	if err != nil {
		return nil, fmt.Errorf("list weekly costs for job %s: %w", jobID, err)
	}

	entries := make([]WeeklyCostEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, weeklyCostFromRecord(r))
	}
	return entries, nil
}

// GetWeeklyCostEntry looks up the entry for an exact (job, week_ending)
// pair. Absence is normal (the cost entry form checks before prefilling),
// so a miss returns (nil, nil) rather than an error.
func (s *Store) GetWeeklyCostEntry(jobID, weekEnding string) (*WeeklyCostEntry, error) {
	record, err := s.findWeeklyCostRecord(jobID, weekEnding)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	entry := weeklyCostFromRecord(record)
	return &entry, nil
}

// UpsertWeeklyCost is the only write path for weekly costs. A week's entry
// is identified by its (job_id, week_ending) pair: when an entry already
// exists for that pair every cost field, the man-day count and the notes
// are overwritten in place, preserving the record's id and created stamp.
// Otherwise a new entry is inserted. Callers are responsible for passing a
// canonical Saturday week_ending; no date math happens here.
func (s *Store) UpsertWeeklyCost(entry WeeklyCostEntry) (WeeklyCostEntry, error) {
	entry.WeekEnding = strings.TrimSpace(entry.WeekEnding)

	errs := &ValidationError{Fields: map[string]string{}}
	if entry.JobID == "" {
		errs.Fields["job_id"] = "Job is required"
	}
	if entry.WeekEnding == "" {
		errs.Fields["week_ending"] = "Week ending date is required"
	}
	if len(errs.Fields) > 0 {
		return WeeklyCostEntry{}, errs
	}

	record, err := s.findWeeklyCostRecord(entry.JobID, entry.WeekEnding)
	if err != nil {
		return WeeklyCostEntry{}, err
	}

	if record == nil {
		col, err := s.app.FindCollectionByNameOrId("weekly_costs")
		if err != nil {
			return WeeklyCostEntry{}, fmt.Errorf("upsert weekly cost: %w", err)
		}
		record = core.NewRecord(col)
		record.Set("job", entry.JobID)
		record.Set("week_ending", entry.WeekEnding)
	}

	record.Set("insurance_actual", entry.InsuranceActual)
	record.Set("labor_actual", entry.LaborActual)
	record.Set("stamps_actual", entry.StampsActual)
	record.Set("material_actual", entry.MaterialActual)
	record.Set("subs_bond_actual", entry.SubsBondActual)
	record.Set("equipment_actual", entry.EquipmentActual)
	record.Set("man_days_actual", entry.ManDaysActual)
	record.Set("notes", entry.Notes)

	if err := s.app.Save(record); err != nil {
		return WeeklyCostEntry{}, fmt.Errorf("upsert weekly cost: %w", err)
	}
	return weeklyCostFromRecord(record), nil
}

func (s *Store) findWeeklyCostRecord(jobID, weekEnding string) (*core.Record, error) {
	records, err := s.app.FindRecordsByFilter(
		"weekly_costs",
		"job = {:job} && week_ending = {:week}",
		"", 1, 0,
		map[string]any{"job": jobID, "week": weekEnding},
	)
	if err != nil {
		return nil, fmt.Errorf("find weekly cost (%s, %s): %w", jobID, weekEnding, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}
