package view

import (
	"sort"
	"time"

	"petcare/internal/domain/entity"
)

// MedicationStatus classifies a medication at now. Finished wins over
// Scheduled, which wins over Active.
func MedicationStatus(m *entity.Medication, now time.Time) entity.MedicationStatus {
	switch {
	case m.EndDate != nil && m.EndDate.Before(now):
		return entity.MedicationFinished
	case m.StartDate.After(now):
		return entity.MedicationScheduled
	default:
		return entity.MedicationActive
	}
}

// DueReminders lists the pet's vaccine doses falling due and appointments
// starting within [now, now+window), soonest first.
func DueReminders(pet *entity.Pet, vaccines []*entity.Vaccine, appointments []*entity.Appointment, now time.Time, window time.Duration) []entity.Reminder {
	end := now.Add(window)
	inWindow := func(t time.Time) bool { return !t.Before(now) && t.Before(end) }

	out := make([]entity.Reminder, 0)
	for _, v := range vaccines {
		if v.NextDueAt != nil && inWindow(*v.NextDueAt) {
			out = append(out, entity.Reminder{
				PetID: pet.ID, PetName: pet.Name, Kind: entity.KindVaccine, Title: v.Type, DueAt: *v.NextDueAt,
			})
		}
	}
	for _, a := range appointments {
		if inWindow(a.Start) {
			out = append(out, entity.Reminder{
				PetID: pet.ID, PetName: pet.Name, Kind: entity.KindAppointment, Title: a.Title, DueAt: a.Start,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })

	return out
}
