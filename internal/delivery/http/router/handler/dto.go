// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"petcare/internal/domain/entity"
)

// IdentityResponse is returned by the sign-in endpoints
type IdentityResponse struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName,omitempty"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

func newIdentityResponse(i *entity.Identity) *IdentityResponse {
	if i == nil {
		return nil
	}

	return &IdentityResponse{
		UID:          i.UID,
		Email:        i.Email,
		DisplayName:  i.DisplayName,
		IDToken:      i.IDToken,
		RefreshToken: i.RefreshToken,
	}
}

// PetResponse represents a pet
type PetResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Breed        string     `json:"breed"`
	Sex          string     `json:"sex"`
	Color        string     `json:"color"`
	ChipNumber   string     `json:"chipNumber"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Neutered     bool       `json:"neutered"`
	PhotoURL     string     `json:"photoUrl"`
	Gallery      []string   `json:"gallery"`
	BehaviorTags []string   `json:"behaviorTags"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func newPetResponse(p *entity.Pet) *PetResponse {
	return &PetResponse{
		ID:           p.ID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Sex:          p.Sex,
		Color:        p.Color,
		ChipNumber:   p.ChipNumber,
		BirthDate:    p.BirthDate,
		Neutered:     p.Neutered,
		PhotoURL:     p.PhotoURL,
		Gallery:      nonNil(p.Gallery),
		BehaviorTags: nonNil(p.BehaviorTags),
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// AppointmentResponse represents an appointment
type AppointmentResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Location  string     `json:"location"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newAppointmentResponse(a *entity.Appointment) any {
	return &AppointmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		Start:     a.Start,
		End:       a.End,
		Location:  a.Location,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}

// VaccineResponse represents a vaccine dose
type VaccineResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	AppliedAt time.Time  `json:"appliedAt"`
	NextDueAt *time.Time `json:"nextDueAt,omitempty"`
	Cost      float64    `json:"cost"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newVaccineResponse(v *entity.Vaccine) any {
	return &VaccineResponse{
		ID:        v.ID,
		Type:      v.Type,
		AppliedAt: v.AppliedAt,
		NextDueAt: v.NextDueAt,
		Cost:      v.Cost,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

// ExamResponse represents an exam and its documents
type ExamResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	State       entity.ExamState `json:"state"`
	ScheduledAt *time.Time       `json:"scheduledAt,omitempty"`
	Performed   bool             `json:"performed"`
	PerformedAt *time.Time       `json:"performedAt,omitempty"`
	Location    string           `json:"location"`
	Cost        float64          `json:"cost"`
	Notes       string           `json:"notes"`
	OrderURL    string           `json:"orderUrl,omitempty"`
	ResultURL   string           `json:"resultUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func newExamResponse(e *entity.Exam) any {
	return &ExamResponse{
		ID:          e.ID,
		Type:        e.Type,
		State:       e.State(),
		ScheduledAt: e.ScheduledAt,
		Performed:   e.Performed,
		PerformedAt: e.PerformedAt,
		Location:    e.Location,
		Cost:        e.Cost,
		Notes:       e.Notes,
		OrderURL:    e.OrderURL,
		ResultURL:   e.ResultURL,
		CreatedAt:   e.CreatedAt,
	}
}

// MedicationResponse represents a medication
type MedicationResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	DosageMg  float64    `json:"dosageMg"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Cost      float64    `json:"cost"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newMedicationResponse(m *entity.Medication) any {
	return &MedicationResponse{
		ID:        m.ID,
		Name:      m.Name,
		DosageMg:  m.DosageMg,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Cost:      m.Cost,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// DayResponse groups the appointments of one day
type DayResponse struct {
	Day          string `json:"day"` // YYYY-MM-DD
	Appointments []any  `json:"appointments"`
}

// ProfileResponse represents the owner profile
type ProfileResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email"`
	Devices int    `json:"devices"`
}

func newProfileResponse(p *entity.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Phone:   p.Phone,
		Address: p.Address,
		Region:  p.Region,
		Email:   p.Email,
		Devices: len(p.DeviceTokens),
	}
}

// IDResponse carries the ID of a created record
type IDResponse struct {
	ID string `json:"id"`
}

// URLResponse carries one uploaded file URL
type URLResponse struct {
	URL string `json:"url"`
}

// URLsResponse carries uploaded file URLs
type URLsResponse struct {
	URLs []string `json:"urls"`
}

func mapAll[T any](items []*T, fn func(*T) any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
