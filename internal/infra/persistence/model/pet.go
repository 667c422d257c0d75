package model

import (
	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
)

// Pet field names.
const (
	PetOwnerID      = "ownerId"
	PetName         = "name"
	PetSpecies      = "species"
	PetBreed        = "breed"
	PetSex          = "sex"
	PetColor        = "color"
	PetChipNumber   = "chipNumber"
	PetBirthDate    = "birthDate"
	PetNeutered     = "neutered"
	PetPhotoURL     = "photoUrl"
	PetGallery      = "gallery"
	PetBehaviorTags = "behaviorTags"
	PetNotes        = "notes"
)

// PetFields encodes a new pet. ID and timestamps are owned by the store.
func PetFields(p *entity.Pet) map[string]any {
	fields := map[string]any{
		PetOwnerID:      p.OwnerID,
		PetName:         p.Name,
		PetSpecies:      p.Species,
		PetBreed:        p.Breed,
		PetSex:          p.Sex,
		PetColor:        p.Color,
		PetChipNumber:   p.ChipNumber,
		PetNeutered:     p.Neutered,
		PetGallery:      anySlice(p.Gallery),
		PetBehaviorTags: anySlice(p.BehaviorTags),
	}
	putTime(fields, PetBirthDate, p.BirthDate)
	putString(fields, PetPhotoURL, p.PhotoURL)
	putString(fields, PetNotes, p.Notes)

	return fields
}

// PetFromDocument decodes a stored pet.
func PetFromDocument(doc repository.Document) *entity.Pet {
	f := doc.Fields

	return &entity.Pet{
		ID:           doc.ID,
		OwnerID:      str(f, PetOwnerID),
		Name:         str(f, PetName),
		Species:      str(f, PetSpecies),
		Breed:        str(f, PetBreed),
		Sex:          str(f, PetSex),
		Color:        str(f, PetColor),
		ChipNumber:   str(f, PetChipNumber),
		BirthDate:    optionalTime(f, PetBirthDate),
		Neutered:     boolean(f, PetNeutered),
		PhotoURL:     str(f, PetPhotoURL),
		Gallery:      stringList(f, PetGallery),
		BehaviorTags: stringList(f, PetBehaviorTags),
		Notes:        str(f, PetNotes),
		CreatedAt:    timestamp(f, repository.FieldCreatedAt),
		UpdatedAt:    optionalTime(f, repository.FieldUpdatedAt),
	}
}

// PetUpdates converts a patch to field updates.
func PetUpdates(in entity.PetPatch) []repository.FieldUpdate {
	var p patch
	p.str(PetName, in.Name)
	p.str(PetSpecies, in.Species)
	p.str(PetBreed, in.Breed)
	p.str(PetSex, in.Sex)
	p.str(PetColor, in.Color)
	p.str(PetChipNumber, in.ChipNumber)
	p.time(PetBirthDate, in.BirthDate)
	p.boolean(PetNeutered, in.Neutered)
	p.str(PetPhotoURL, in.PhotoURL)
	p.str(PetNotes, in.Notes)
	if in.BehaviorTags != nil {
		p = append(p, repository.Set(PetBehaviorTags, anySlice(*in.BehaviorTags)))
	}

	return p
}
