// Package model maps domain entities to and from stored document fields.
package model

import (
	"strings"
	"time"

	"petcare/internal/domain/repository"
)

// Collection names.
const (
	CollectionPets         = "pets"
	CollectionUsers        = "users"
	CollectionAppointments = "appointments"
	CollectionVaccines     = "vaccines"
	CollectionExams        = "exams"
	CollectionMedications  = "medications"
)

// PetPath returns the path of a pet document.
func PetPath(petID string) string {
	return CollectionPets + "/" + petID
}

// SubCollectionPath returns the path of a collection nested under a pet.
func SubCollectionPath(petID, collection string) string {
	return PetPath(petID) + "/" + collection
}

// UserPath returns the path of a user profile document.
func UserPath(uid string) string {
	return CollectionUsers + "/" + uid
}

// ParentPetID extracts the pet ID from a path such as pets/{id}/exams/{examId}.
func ParentPetID(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] != CollectionPets {
		return ""
	}

	return parts[1]
}

func str(fields map[string]any, key string) string {
	v, _ := fields[key].(string)

	return v
}

func boolean(fields map[string]any, key string) bool {
	v, _ := fields[key].(bool)

	return v
}

// number accepts the numeric shapes a store may return for a value written by
// another client.
func number(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}

	return 0
}

func timestamp(fields map[string]any, key string) time.Time {
	v, _ := fields[key].(time.Time)

	return v
}

func optionalTime(fields map[string]any, key string) *time.Time {
	v, ok := fields[key].(time.Time)
	if !ok {
		return nil
	}

	return &v
}

func stringList(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	}

	return nil
}

func putTime(fields map[string]any, key string, t *time.Time) {
	if t != nil {
		fields[key] = *t
	}
}

func putString(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// patch accumulates field updates for the non-nil fields of a patch struct.
type patch []repository.FieldUpdate

func (p *patch) str(field string, v *string) {
	if v != nil {
		*p = append(*p, repository.Set(field, *v))
	}
}

func (p *patch) num(field string, v *float64) {
	if v != nil {
		*p = append(*p, repository.Set(field, *v))
	}
}

func (p *patch) boolean(field string, v *bool) {
	if v != nil {
		*p = append(*p, repository.Set(field, *v))
	}
}

func (p *patch) time(field string, v *time.Time) {
	if v != nil {
		*p = append(*p, repository.Set(field, *v))
	}
}

func (p *patch) clear(field string, clear bool) {
	if clear {
		*p = append(*p, repository.DeleteField(field))
	}
}
