package view

import (
	"sort"
	"time"

	"petcare/internal/domain/entity"
)

// TotalCost sums cost over items. A missing cost reads as zero.
func TotalCost[T any](items []T, cost func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += cost(item)
	}

	return total
}

// VaccineCost, ExamCost and MedicationCost read the cost of a record.
func VaccineCost(v *entity.Vaccine) float64       { return v.Cost }
func ExamCost(e *entity.Exam) float64             { return e.Cost }
func MedicationCost(m *entity.Medication) float64 { return m.Cost }

// CashFlow merges the cost-bearing records, most recent first: vaccines with a
// positive cost, performed exams with a positive cost and medications with a
// positive cost. Entries with equal dates keep their input order.
func CashFlow(vaccines []*entity.Vaccine, exams []*entity.Exam, medications []*entity.Medication) []entity.CashFlowEntry {
	out := make([]entity.CashFlowEntry, 0)

	for _, v := range vaccines {
		if v.Cost > 0 {
			out = append(out, entity.CashFlowEntry{
				Date: v.AppliedAt, Kind: entity.KindVaccine, Description: v.Type, Amount: v.Cost,
			})
		}
	}
	for _, e := range exams {
		if e.Performed && e.Cost > 0 {
			out = append(out, entity.CashFlowEntry{
				Date: examDate(e), Kind: entity.KindExam, Description: e.Type, Amount: e.Cost,
			})
		}
	}
	for _, m := range medications {
		if m.Cost > 0 {
			out = append(out, entity.CashFlowEntry{
				Date: m.StartDate, Kind: entity.KindMedication, Description: m.Name, Amount: m.Cost,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return out
}

// examDate is the date an exam's expense is booked on.
func examDate(e *entity.Exam) time.Time {
	switch {
	case e.PerformedAt != nil:
		return *e.PerformedAt
	case e.ScheduledAt != nil:
		return *e.ScheduledAt
	default:
		return e.CreatedAt
	}
}

// Finance summarises a pet's expenses. Category totals count the same records
// the cash-flow feed lists, so Total always equals the sum of the feed.
func Finance(vaccines []*entity.Vaccine, exams []*entity.Exam, medications []*entity.Medication) entity.FinanceSummary {
	flow := CashFlow(vaccines, exams, medications)

	var summary entity.FinanceSummary
	for _, entry := range flow {
		switch entry.Kind {
		case entity.KindVaccine:
			summary.VaccinesTotal += entry.Amount
		case entity.KindExam:
			summary.ExamsTotal += entry.Amount
		case entity.KindMedication:
			summary.MedicationsTotal += entry.Amount
		}
		summary.Total += entry.Amount
	}
	summary.CashFlow = flow

	return summary
}
