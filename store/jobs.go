package store

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// JobStatuses lists the allowed job lifecycle states.
var JobStatuses = []string{"estimate", "active", "completed", "closed"}

// ListJobs returns every job regardless of status, newest first, with the
// customer name resolved where the reference is still valid. Jobs whose
// customer was deleted or never set keep an empty CustomerName.
func (s *Store) ListJobs() ([]Job, error) {
	records, err := s.app.FindRecordsByFilter("jobs", "", "-created", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	names, err := s.customerNames()
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]Job, 0, len(records))
	for _, r := range records {
		job := jobFromRecord(r)
		job.CustomerName = names[job.CustomerID]
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// GetJob returns a single job with its customer name resolved.
func (s *Store) GetJob(id string) (Job, error) {
	record, err := s.app.FindRecordById("jobs", id)
	if err != nil {
		return Job{}, ErrNotFound
	}

	job := jobFromRecord(record)
	if job.CustomerID != "" {
		if customer, err := s.app.FindRecordById("customers", job.CustomerID); err == nil {
			job.CustomerName = customer.GetString("name")
		}
	}
	return job, nil
}

// CreateJob validates and inserts a new job. Job number and name are
// required; the job number must not already exist, compared case-sensitively
// across all jobs regardless of status. The uniqueness check runs at
// creation time only.
func (s *Store) CreateJob(j Job) (Job, error) {
	j.JobNumber = strings.TrimSpace(j.JobNumber)
	j.JobName = strings.TrimSpace(j.JobName)

	errs := &ValidationError{Fields: map[string]string{}}
	if j.JobNumber == "" {
		errs.Fields["job_number"] = "Job number is required"
	}
	if j.JobName == "" {
		errs.Fields["job_name"] = "Job name is required"
	}
	if len(errs.Fields) > 0 {
		return Job{}, errs
	}

	existing, err := s.app.FindRecordsByFilter(
		"jobs",
		"job_number = {:num}",
		"", 0, 0,
		map[string]any{"num": j.JobNumber},
	)
	if err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}
	for _, r := range existing {
		if r.GetString("job_number") == j.JobNumber {
			return Job{}, newValidationError("job_number",
				fmt.Sprintf("Job number %s already exists", j.JobNumber))
		}
	}

	if !validJobStatus(j.Status) {
		j.Status = "estimate"
	}

	col, err := s.app.FindCollectionByNameOrId("jobs")
	if err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("job_number", j.JobNumber)
	setJobFields(record, j)

	if err := s.app.Save(record); err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}

	saved := jobFromRecord(record)
	saved.CustomerName = j.CustomerName
	return saved, nil
}

// UpdateJob overwrites the editable fields of an existing job. The job
// number is immutable after creation.
func (s *Store) UpdateJob(id string, j Job) (Job, error) {
	record, err := s.app.FindRecordById("jobs", id)
	if err != nil {
		return Job{}, ErrNotFound
	}

	j.JobName = strings.TrimSpace(j.JobName)
	if j.JobName == "" {
		return Job{}, newValidationError("job_name", "Job name is required")
	}
	if !validJobStatus(j.Status) {
		return Job{}, newValidationError("status", "Unknown job status")
	}

	setJobFields(record, j)

	if err := s.app.Save(record); err != nil {
		return Job{}, fmt.Errorf("update job %s: %w", id, err)
	}
	return s.GetJob(id)
}

// DeleteJob hard-deletes a job. The weekly_costs relation is configured
// with cascade delete, so every weekly cost entry for the job goes with it.
func (s *Store) DeleteJob(id string) error {
	record, err := s.app.FindRecordById("jobs", id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	return nil
}

// customerNames maps customer id to name across all customers, inactive
// included, so jobs referencing a soft-deleted customer still resolve.
func (s *Store) customerNames() (map[string]string, error) {
	records, err := s.app.FindRecordsByFilter("customers", "", "", 0, 0)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(records))
	for _, r := range records {
		names[r.Id] = r.GetString("name")
	}
	return names, nil
}

// setJobFields writes every editable job field except job_number.
func setJobFields(record *core.Record, j Job) {
	record.Set("job_name", j.JobName)
	record.Set("customer", j.CustomerID)
	record.Set("contract_amount", j.ContractAmount)
	record.Set("pending_change_orders", j.PendingChangeOrders)
	record.Set("approved_change_orders", j.ApprovedChangeOrders)
	record.Set("status", j.Status)
	record.Set("start_date", j.StartDate)
	record.Set("budget_insurance", j.BudgetInsurance)
	record.Set("budget_labor", j.BudgetLabor)
	record.Set("budget_stamps", j.BudgetStamps)
	record.Set("budget_material", j.BudgetMaterial)
	record.Set("budget_subs_bond", j.BudgetSubsBond)
	record.Set("budget_equipment", j.BudgetEquipment)
	record.Set("budget_man_days", j.BudgetManDays)
	record.Set("notes", j.Notes)
}

func validJobStatus(status string) bool {
	for _, opt := range JobStatuses {
		if status == opt {
			return true
		}
	}
	return false
}
