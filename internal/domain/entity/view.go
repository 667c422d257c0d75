package entity

import "time"

// RecordKind names a sub-record collection.
type RecordKind string

const (
	KindAppointment RecordKind = "appointment"
	KindVaccine     RecordKind = "vaccine"
	KindExam        RecordKind = "exam"
	KindMedication  RecordKind = "medication"
)

// DayAppointments groups the appointments of one calendar day.
type DayAppointments struct {
	Day          time.Time // Midnight of the day, in the grouping location.
	Appointments []*Appointment
}

// CashFlowEntry is one cost-bearing record in the expense feed.
type CashFlowEntry struct {
	Date        time.Time  `json:"date"`
	Kind        RecordKind `json:"kind"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
}

// FinanceSummary aggregates a pet's medical expenses.
type FinanceSummary struct {
	VaccinesTotal    float64         `json:"vaccinesTotal"`
	ExamsTotal       float64         `json:"examsTotal"`
	MedicationsTotal float64         `json:"medicationsTotal"`
	Total            float64         `json:"total"`
	CashFlow         []CashFlowEntry `json:"cashFlow"`
}

// Reminder is an upcoming vaccine dose or appointment.
type Reminder struct {
	PetID   string     `json:"petId"`
	PetName string     `json:"petName"`
	Kind    RecordKind `json:"kind"`
	Title   string     `json:"title"`
	DueAt   time.Time  `json:"dueAt"`
}
