package model

import (
	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
)

// User profile field names.
const (
	UserName         = "name"
	UserSurname      = "surname"
	UserPhone        = "phone"
	UserAddress      = "address"
	UserRegion       = "region"
	UserEmail        = "email"
	UserDeviceTokens = "deviceTokens"
)

// ProfileFields encodes a profile.
func ProfileFields(u *entity.UserProfile) map[string]any {
	return map[string]any{
		UserName:         u.Name,
		UserSurname:      u.Surname,
		UserPhone:        u.Phone,
		UserAddress:      u.Address,
		UserRegion:       u.Region,
		UserEmail:        u.Email,
		UserDeviceTokens: anySlice(u.DeviceTokens),
	}
}

// ProfileFromDocument decodes a stored profile.
func ProfileFromDocument(doc repository.Document) *entity.UserProfile {
	f := doc.Fields

	return &entity.UserProfile{
		ID:           doc.ID,
		Name:         str(f, UserName),
		Surname:      str(f, UserSurname),
		Phone:        str(f, UserPhone),
		Address:      str(f, UserAddress),
		Region:       str(f, UserRegion),
		Email:        str(f, UserEmail),
		DeviceTokens: stringList(f, UserDeviceTokens),
		CreatedAt:    timestamp(f, repository.FieldCreatedAt),
	}
}

// ProfileUpdates converts a patch to field updates.
func ProfileUpdates(in entity.UserProfilePatch) []repository.FieldUpdate {
	var p patch
	p.str(UserName, in.Name)
	p.str(UserSurname, in.Surname)
	p.str(UserPhone, in.Phone)
	p.str(UserAddress, in.Address)
	p.str(UserRegion, in.Region)

	return p
}
