package view

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"petcare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var santiago = time.FixedZone("CLT", -3*3600)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, santiago)
}

func ptr[T any](v T) *T { return &v }

func titles(list []*entity.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Title)
	}

	return out
}

func TestAppointmentsOnDay_ComparesCalendarDayNotWindow(t *testing.T) {
	list := []*entity.Appointment{
		{Title: "late night", Start: at(2024, 3, 10, 23)},
		{Title: "next morning", Start: at(2024, 3, 11, 1)},
		{Title: "same day utc", Start: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)},
		{Title: "utc next day but local same day", Start: time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC)},
	}

	got := AppointmentsOnDay(list, at(2024, 3, 10, 9))

	assert.Equal(t, []string{"late night", "same day utc", "utc next day but local same day"}, titles(got))
}

func TestAppointmentsInMonth_HalfOpen(t *testing.T) {
	list := []*entity.Appointment{
		{Title: "first instant", Start: at(2024, 2, 1, 0)},
		{Title: "leap day", Start: at(2024, 2, 29, 23)},
		{Title: "next month", Start: at(2024, 3, 1, 0)},
		{Title: "previous month", Start: at(2024, 1, 31, 23)},
	}

	got := AppointmentsInMonth(list, at(2024, 2, 15, 10))

	assert.Equal(t, []string{"first instant", "leap day"}, titles(got))
}

func TestAppointmentsOnDayIsSubsetOfMonth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := at(2024, 1, 1, 0)

	list := make([]*entity.Appointment, 0, 200)
	for i := 0; i < 200; i++ {
		list = append(list, &entity.Appointment{
			ID:    string(rune('a' + i%26)),
			Start: base.Add(time.Duration(rng.Int63n(int64(400 * 24 * time.Hour)))),
		})
	}

	for d := 0; d < 400; d += 3 {
		day := base.AddDate(0, 0, d)
		month := AppointmentsInMonth(list, day)
		for _, a := range AppointmentsOnDay(list, day) {
			assert.Contains(t, month, a)
		}
	}
}

func TestGroupByDay(t *testing.T) {
	list := []*entity.Appointment{
		{Title: "c", Start: at(2024, 3, 12, 9)},
		{Title: "b2", Start: at(2024, 3, 10, 15)},
		{Title: "b1", Start: at(2024, 3, 10, 8)},
	}

	groups := GroupByDay(list, santiago)

	require.Len(t, groups, 2)
	assert.Equal(t, at(2024, 3, 10, 0), groups[0].Day)
	assert.Equal(t, []string{"b1", "b2"}, titles(groups[0].Appointments))
	assert.Equal(t, at(2024, 3, 12, 0), groups[1].Day)
	assert.Equal(t, []string{"c"}, titles(groups[1].Appointments))
}

func TestTotalCost(t *testing.T) {
	vaccines := []*entity.Vaccine{{Cost: 1000}, {}, {Cost: 2500.5}}

	assert.InDelta(t, 3500.5, TotalCost(vaccines, VaccineCost), 1e-9)
	assert.Zero(t, TotalCost([]*entity.Medication{}, MedicationCost))
}

func TestCashFlow_OnlyCostBearingRecords(t *testing.T) {
	vaccines := []*entity.Vaccine{{Type: "rabia", AppliedAt: at(2024, 1, 5, 0), Cost: 0}}
	exams := []*entity.Exam{{Type: "X-ray", Performed: true, PerformedAt: ptr(at(2024, 2, 1, 0)), Cost: 15000}}
	meds := []*entity.Medication{{Name: "amoxicilina", StartDate: at(2024, 1, 20, 0), Cost: 5000}}

	flow := CashFlow(vaccines, exams, meds)

	require.Len(t, flow, 2)
	assert.Equal(t, entity.KindExam, flow[0].Kind)
	assert.Equal(t, 15000.0, flow[0].Amount)
	assert.Equal(t, entity.KindMedication, flow[1].Kind)
	assert.Equal(t, 5000.0, flow[1].Amount)
}

func TestCashFlow_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := at(2023, 1, 1, 0)
	randDate := func() time.Time { return base.Add(time.Duration(rng.Intn(900)) * time.Hour) }
	randCost := func() float64 { return float64(rng.Intn(5)-1) * 1000 }

	var (
		vaccines []*entity.Vaccine
		exams    []*entity.Exam
		meds     []*entity.Medication
	)
	for i := 0; i < 60; i++ {
		vaccines = append(vaccines, &entity.Vaccine{Type: "v", AppliedAt: randDate(), Cost: randCost()})
		exams = append(exams, &entity.Exam{Type: "e", Performed: rng.Intn(2) == 0, PerformedAt: ptr(randDate()), Cost: randCost()})
		meds = append(meds, &entity.Medication{Name: "m", StartDate: randDate(), Cost: randCost()})
	}

	flow := CashFlow(vaccines, exams, meds)

	assert.True(t, sort.SliceIsSorted(flow, func(i, j int) bool { return flow[i].Date.After(flow[j].Date) }))
	for _, entry := range flow {
		assert.Positive(t, entry.Amount)
	}

	want := 0
	for _, v := range vaccines {
		if v.Cost > 0 {
			want++
		}
	}
	for _, e := range exams {
		if e.Performed && e.Cost > 0 {
			want++
		}
	}
	for _, m := range meds {
		if m.Cost > 0 {
			want++
		}
	}
	assert.Len(t, flow, want)
}

func TestFinance_TotalsMatchFeed(t *testing.T) {
	summary := Finance(
		[]*entity.Vaccine{{AppliedAt: at(2024, 1, 1, 0), Cost: 100}},
		[]*entity.Exam{
			{Performed: true, Cost: 200},
			{Performed: false, Cost: 999},
		},
		[]*entity.Medication{{StartDate: at(2024, 1, 2, 0), Cost: 300}},
	)

	assert.Equal(t, 100.0, summary.VaccinesTotal)
	assert.Equal(t, 200.0, summary.ExamsTotal)
	assert.Equal(t, 300.0, summary.MedicationsTotal)
	assert.Equal(t, 600.0, summary.Total)
	assert.Len(t, summary.CashFlow, 3)
}

func TestMedicationStatus(t *testing.T) {
	now := at(2024, 6, 1, 12)

	tests := []struct {
		name string
		med  entity.Medication
		want entity.MedicationStatus
	}{
		{
			name: "ended before now",
			med:  entity.Medication{StartDate: at(2024, 5, 1, 0), EndDate: ptr(at(2024, 5, 31, 0))},
			want: entity.MedicationFinished,
		},
		{
			name: "finished wins over scheduled",
			med:  entity.Medication{StartDate: at(2024, 7, 1, 0), EndDate: ptr(at(2024, 5, 31, 0))},
			want: entity.MedicationFinished,
		},
		{
			name: "starts in the future",
			med:  entity.Medication{StartDate: at(2024, 6, 2, 0)},
			want: entity.MedicationScheduled,
		},
		{
			name: "running without end",
			med:  entity.Medication{StartDate: at(2024, 5, 1, 0)},
			want: entity.MedicationActive,
		},
		{
			name: "ends exactly now",
			med:  entity.Medication{StartDate: at(2024, 5, 1, 0), EndDate: ptr(now)},
			want: entity.MedicationActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MedicationStatus(&tt.med, now))
		})
	}
}

func TestMedicationStatus_PastEndAlwaysFinished(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := at(2024, 6, 1, 12)

	for i := 0; i < 100; i++ {
		end := now.Add(-time.Duration(rng.Intn(1000)+1) * time.Minute)
		start := now.Add(time.Duration(rng.Intn(2000)-1000) * time.Hour)

		assert.Equal(t, entity.MedicationFinished, MedicationStatus(&entity.Medication{StartDate: start, EndDate: &end}, now))
	}
}

func TestDueReminders(t *testing.T) {
	now := at(2024, 6, 1, 12)
	pet := &entity.Pet{ID: "p1", Name: "Luna"}
	vaccines := []*entity.Vaccine{
		{Type: "rabia", NextDueAt: ptr(at(2024, 6, 5, 0))},
		{Type: "past", NextDueAt: ptr(at(2024, 5, 30, 0))},
		{Type: "far", NextDueAt: ptr(at(2024, 7, 30, 0))},
		{Type: "none"},
	}
	appointments := []*entity.Appointment{
		{Title: "control", Start: at(2024, 6, 2, 10)},
		{Title: "window end", Start: now.Add(7 * 24 * time.Hour)},
	}

	got := DueReminders(pet, vaccines, appointments, now, 7*24*time.Hour)

	require.Len(t, got, 2)
	assert.Equal(t, entity.Reminder{PetID: "p1", PetName: "Luna", Kind: entity.KindAppointment, Title: "control", DueAt: at(2024, 6, 2, 10)}, got[0])
	assert.Equal(t, "rabia", got[1].Title)
	assert.Equal(t, entity.KindVaccine, got[1].Kind)
}
