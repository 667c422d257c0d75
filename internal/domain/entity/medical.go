package entity

import "time"

// Appointment is a scheduled veterinary visit of a pet.
type Appointment struct {
	ID        string
	PetID     string
	Title     string
	Start     time.Time
	End       *time.Time // Optional; never before Start.
	Location  string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}

// AppointmentPatch lists the appointment fields to change. ClearEnd removes
// the end time.
type AppointmentPatch struct {
	Title    *string
	Start    *time.Time
	End      *time.Time
	ClearEnd bool
	Location *string
	Notes    *string
}

// Vaccine is an applied vaccine dose.
type Vaccine struct {
	ID        string
	PetID     string
	Type      string
	AppliedAt time.Time
	NextDueAt *time.Time // Optional date of the next dose.
	Cost      float64    // Zero when unknown.
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}

// VaccinePatch lists the vaccine fields to change.
type VaccinePatch struct {
	Type           *string
	AppliedAt      *time.Time
	NextDueAt      *time.Time
	ClearNextDueAt bool
	Cost           *float64
	Notes          *string
}

// Exam is a lab or imaging exam. PerformedAt is present exactly when Performed is true.
type Exam struct {
	ID          string
	PetID       string
	Type        string
	ScheduledAt *time.Time
	Performed   bool
	PerformedAt *time.Time
	Location    string
	Cost        float64
	Notes       string
	OrderURL    string // Uploaded exam order document.
	ResultURL   string // Uploaded exam result document.
	CreatedAt   time.Time
}

// ExamState is the lifecycle state of an exam.
type ExamState string

const (
	ExamScheduled ExamState = "scheduled"
	ExamPerformed ExamState = "performed"
)

// State derives the exam state from the performed flag.
func (e *Exam) State() ExamState {
	if e.Performed {
		return ExamPerformed
	}

	return ExamScheduled
}

// ExamPatch lists the exam fields to change. ClearPerformedAt removes the
// performed date from the stored record, which differs from setting it to null.
type ExamPatch struct {
	Type             *string
	ScheduledAt      *time.Time
	Performed        *bool
	PerformedAt      *time.Time
	ClearPerformedAt bool
	Location         *string
	Cost             *float64
	Notes            *string
	OrderURL         *string
	ResultURL        *string
	ClearOrderURL    bool
	ClearResultURL   bool
}

// ExamFileKind selects which exam document a file belongs to.
type ExamFileKind string

const (
	ExamFileOrder  ExamFileKind = "order"
	ExamFileResult ExamFileKind = "result"
)

// Medication is a treatment with a start and optional end date.
type Medication struct {
	ID        string
	PetID     string
	Name      string
	DosageMg  float64
	StartDate time.Time
	EndDate   *time.Time // Optional; never before StartDate.
	Cost      float64
	Notes     string
	CreatedAt time.Time
}

// MedicationPatch lists the medication fields to change.
type MedicationPatch struct {
	Name         *string
	DosageMg     *float64
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Cost         *float64
	Notes        *string
}

// MedicationStatus is the temporal status of a medication relative to now.
type MedicationStatus string

const (
	MedicationScheduled MedicationStatus = "scheduled"
	MedicationActive    MedicationStatus = "active"
	MedicationFinished  MedicationStatus = "finished"
)
