// Package services holds the job-costing computation core: cost
// aggregation, financial metrics, report roll-ups and export generation.
// Everything here is a synchronous function of its inputs; totals are
// recomputed from scratch on every read so no aggregate can go stale.
package services

import "jobcosting/store"

// CostTotals is the lifetime cost reduction of a job's weekly entries.
// ManDays is a labor-quantity metric, not a cost category, and is excluded
// from Total.
type CostTotals struct {
	Insurance float64 `json:"insurance"`
	Labor     float64 `json:"labor"`
	Stamps    float64 `json:"stamps"`
	Material  float64 `json:"material"`
	SubsBond  float64 `json:"subs_bond"`
	Equipment float64 `json:"equipment"`
	ManDays   int     `json:"man_days"`
	Total     float64 `json:"total"`
}

// SumCosts reduces weekly cost entries into per-category and total sums.
// Zero entries produce an all-zero result.
func SumCosts(entries []store.WeeklyCostEntry) CostTotals {
	var t CostTotals
	for _, e := range entries {
		t.Insurance += e.InsuranceActual
		t.Labor += e.LaborActual
		t.Stamps += e.StampsActual
		t.Material += e.MaterialActual
		t.SubsBond += e.SubsBondActual
		t.Equipment += e.EquipmentActual
		t.ManDays += e.ManDaysActual
	}
	t.Total = t.Insurance + t.Labor + t.Stamps + t.Material + t.SubsBond + t.Equipment
	return t
}

// AggregateJobCosts loads every weekly cost entry for a job and sums it.
// No date filtering: totals are lifetime totals.
func AggregateJobCosts(st *store.Store, jobID string) (CostTotals, error) {
	entries, err := st.ListWeeklyCosts(jobID)
	if err != nil {
		return CostTotals{}, err
	}
	return SumCosts(entries), nil
}
