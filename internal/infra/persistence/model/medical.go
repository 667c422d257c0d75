package model

import (
	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
)

// Sub-record field names.
const (
	FieldTitle       = "title"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldLocation    = "location"
	FieldNotes       = "notes"
	FieldCreatedBy   = "createdBy"
	FieldType        = "type"
	FieldAppliedAt   = "appliedAt"
	FieldNextDueAt   = "nextDueAt"
	FieldCost        = "cost"
	FieldScheduledAt = "scheduledAt"
	FieldPerformed   = "performed"
	FieldPerformedAt = "performedAt"
	FieldOrderURL    = "orderUrl"
	FieldResultURL   = "resultUrl"
	FieldName        = "name"
	FieldDosageMg    = "dosageMg"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
)

// AppointmentFields encodes a new appointment.
func AppointmentFields(a *entity.Appointment) map[string]any {
	fields := map[string]any{
		FieldTitle: a.Title,
		FieldStart: a.Start,
	}
	putTime(fields, FieldEnd, a.End)
	putString(fields, FieldLocation, a.Location)
	putString(fields, FieldNotes, a.Notes)
	putString(fields, FieldCreatedBy, a.CreatedBy)

	return fields
}

// AppointmentFromDocument decodes a stored appointment.
func AppointmentFromDocument(doc repository.Document) *entity.Appointment {
	f := doc.Fields

	return &entity.Appointment{
		ID:        doc.ID,
		PetID:     ParentPetID(doc.Path),
		Title:     str(f, FieldTitle),
		Start:     timestamp(f, FieldStart),
		End:       optionalTime(f, FieldEnd),
		Location:  str(f, FieldLocation),
		Notes:     str(f, FieldNotes),
		CreatedBy: str(f, FieldCreatedBy),
		CreatedAt: timestamp(f, repository.FieldCreatedAt),
	}
}

// AppointmentUpdates converts a patch to field updates.
func AppointmentUpdates(in entity.AppointmentPatch) []repository.FieldUpdate {
	var p patch
	p.str(FieldTitle, in.Title)
	p.time(FieldStart, in.Start)
	p.time(FieldEnd, in.End)
	p.clear(FieldEnd, in.ClearEnd && in.End == nil)
	p.str(FieldLocation, in.Location)
	p.str(FieldNotes, in.Notes)

	return p
}

// VaccineFields encodes a new vaccine.
func VaccineFields(v *entity.Vaccine) map[string]any {
	fields := map[string]any{
		FieldType:      v.Type,
		FieldAppliedAt: v.AppliedAt,
		FieldCost:      v.Cost,
	}
	putTime(fields, FieldNextDueAt, v.NextDueAt)
	putString(fields, FieldNotes, v.Notes)
	putString(fields, FieldCreatedBy, v.CreatedBy)

	return fields
}

// VaccineFromDocument decodes a stored vaccine.
func VaccineFromDocument(doc repository.Document) *entity.Vaccine {
	f := doc.Fields

	return &entity.Vaccine{
		ID:        doc.ID,
		PetID:     ParentPetID(doc.Path),
		Type:      str(f, FieldType),
		AppliedAt: timestamp(f, FieldAppliedAt),
		NextDueAt: optionalTime(f, FieldNextDueAt),
		Cost:      number(f, FieldCost),
		Notes:     str(f, FieldNotes),
		CreatedBy: str(f, FieldCreatedBy),
		CreatedAt: timestamp(f, repository.FieldCreatedAt),
	}
}

// VaccineUpdates converts a patch to field updates.
func VaccineUpdates(in entity.VaccinePatch) []repository.FieldUpdate {
	var p patch
	p.str(FieldType, in.Type)
	p.time(FieldAppliedAt, in.AppliedAt)
	p.time(FieldNextDueAt, in.NextDueAt)
	p.clear(FieldNextDueAt, in.ClearNextDueAt && in.NextDueAt == nil)
	p.num(FieldCost, in.Cost)
	p.str(FieldNotes, in.Notes)

	return p
}

// ExamFields encodes a new exam. The performed date is only written for a
// performed exam.
func ExamFields(e *entity.Exam) map[string]any {
	fields := map[string]any{
		FieldType:      e.Type,
		FieldPerformed: e.Performed,
		FieldCost:      e.Cost,
	}
	putTime(fields, FieldScheduledAt, e.ScheduledAt)
	if e.Performed {
		putTime(fields, FieldPerformedAt, e.PerformedAt)
	}
	putString(fields, FieldLocation, e.Location)
	putString(fields, FieldNotes, e.Notes)
	putString(fields, FieldOrderURL, e.OrderURL)
	putString(fields, FieldResultURL, e.ResultURL)

	return fields
}

// ExamFromDocument decodes a stored exam.
func ExamFromDocument(doc repository.Document) *entity.Exam {
	f := doc.Fields

	return &entity.Exam{
		ID:          doc.ID,
		PetID:       ParentPetID(doc.Path),
		Type:        str(f, FieldType),
		ScheduledAt: optionalTime(f, FieldScheduledAt),
		Performed:   boolean(f, FieldPerformed),
		PerformedAt: optionalTime(f, FieldPerformedAt),
		Location:    str(f, FieldLocation),
		Cost:        number(f, FieldCost),
		Notes:       str(f, FieldNotes),
		OrderURL:    str(f, FieldOrderURL),
		ResultURL:   str(f, FieldResultURL),
		CreatedAt:   timestamp(f, repository.FieldCreatedAt),
	}
}

// ExamUpdates converts a patch to field updates. Clear flags remove the field
// from the document instead of writing a null.
func ExamUpdates(in entity.ExamPatch) []repository.FieldUpdate {
	var p patch
	p.str(FieldType, in.Type)
	p.time(FieldScheduledAt, in.ScheduledAt)
	p.boolean(FieldPerformed, in.Performed)
	p.time(FieldPerformedAt, in.PerformedAt)
	p.clear(FieldPerformedAt, in.ClearPerformedAt && in.PerformedAt == nil)
	p.str(FieldLocation, in.Location)
	p.num(FieldCost, in.Cost)
	p.str(FieldNotes, in.Notes)
	p.str(FieldOrderURL, in.OrderURL)
	p.clear(FieldOrderURL, in.ClearOrderURL && in.OrderURL == nil)
	p.str(FieldResultURL, in.ResultURL)
	p.clear(FieldResultURL, in.ClearResultURL && in.ResultURL == nil)

	return p
}

// MedicationFields encodes a new medication.
func MedicationFields(m *entity.Medication) map[string]any {
	fields := map[string]any{
		FieldName:      m.Name,
		FieldDosageMg:  m.DosageMg,
		FieldStartDate: m.StartDate,
		FieldCost:      m.Cost,
	}
	putTime(fields, FieldEndDate, m.EndDate)
	putString(fields, FieldNotes, m.Notes)

	return fields
}

// MedicationFromDocument decodes a stored medication.
func MedicationFromDocument(doc repository.Document) *entity.Medication {
	f := doc.Fields

	return &entity.Medication{
		ID:        doc.ID,
		PetID:     ParentPetID(doc.Path),
		Name:      str(f, FieldName),
		DosageMg:  number(f, FieldDosageMg),
		StartDate: timestamp(f, FieldStartDate),
		EndDate:   optionalTime(f, FieldEndDate),
		Cost:      number(f, FieldCost),
		Notes:     str(f, FieldNotes),
		CreatedAt: timestamp(f, repository.FieldCreatedAt),
	}
}

// MedicationUpdates converts a patch to field updates.
func MedicationUpdates(in entity.MedicationPatch) []repository.FieldUpdate {
	var p patch
	p.str(FieldName, in.Name)
	p.num(FieldDosageMg, in.DosageMg)
	p.time(FieldStartDate, in.StartDate)
	p.time(FieldEndDate, in.EndDate)
	p.clear(FieldEndDate, in.ClearEndDate && in.EndDate == nil)
	p.num(FieldCost, in.Cost)
	p.str(FieldNotes, in.Notes)

	return p
}
