// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Pet is the root of the pet aggregate. Medical sub-records live in collections
// nested under the pet and only point back to it through their storage path.
type Pet struct {
	ID           string     // Document ID, unique within the pets collection.
	OwnerID      string     // UID of the owning user (back-reference, not ownership).
	Name         string     // The pet's name.
	Species      string     // e.g. "perro", "gato".
	Breed        string     // Free-form breed label.
	Sex          string     // "macho" / "hembra".
	Color        string     // Coat colour.
	ChipNumber   string     // Microchip number, digits only.
	BirthDate    *time.Time // Optional date of birth.
	Neutered     bool       // Whether the pet is spayed/neutered.
	PhotoURL     string     // Primary photo download URL.
	Gallery      []string   // Ordered gallery of photo download URLs.
	BehaviorTags []string   // Free-form behavioural indicators ("sociable", "miedoso", ...).
	Notes        string     // Owner notes.
	CreatedAt    time.Time  // Registration timestamp, stamped by the store.
	UpdatedAt    *time.Time // Last modification, stamped by the store.
}

// PetPatch lists the pet fields to change. Nil fields are left untouched.
type PetPatch struct {
	Name         *string
	Species      *string
	Breed        *string
	Sex          *string
	Color        *string
	ChipNumber   *string
	BirthDate    *time.Time
	Neutered     *bool
	PhotoURL     *string
	BehaviorTags *[]string
	Notes        *string
}

// Upload is a file handed to blob storage.
type Upload struct {
	Name        string // Original file name.
	ContentType string // MIME type, optional.
	Data        []byte
}
