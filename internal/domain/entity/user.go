package entity

import "time"

// UserProfile holds the owner's personal data. It backs both identity display
// and the lost-pet contact card.
type UserProfile struct {
	ID           string // UID assigned by the identity provider.
	Name         string
	Surname      string
	Phone        string
	Address      string
	Region       string
	Email        string
	DeviceTokens []string // Push notification tokens of the owner's devices.
	CreatedAt    time.Time
}

// UserProfilePatch lists the profile fields to change.
type UserProfilePatch struct {
	Name    *string
	Surname *string
	Phone   *string
	Address *string
	Region  *string
}

// Identity is a signed-in user as reported by the identity provider.
type Identity struct {
	UID          string
	Email        string
	DisplayName  string
	IDToken      string
	RefreshToken string
}
