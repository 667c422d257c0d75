package view

import (
	"strings"

	"petcare/internal/domain/entity"
)

// FoundPetNote is the note printed on every contact card.
const FoundPetNote = "¡Encontré a esta mascota!"

// ContactCard renders the owner's vCard 3.0 for the lost-pet QR code, with
// CRLF line breaks. It reports false when the profile has no name or no phone.
func ContactCard(p *entity.UserProfile) (string, bool) {
	if p == nil {
		return "", false
	}

	name := strings.TrimSpace(p.Name)
	surname := strings.TrimSpace(p.Surname)
	phone := strings.TrimSpace(p.Phone)
	if name == "" || phone == "" {
		return "", false
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + escapeText(surname) + ";" + escapeText(name) + ";;;",
		"FN:" + escapeText(strings.TrimSpace(name+" "+surname)),
		"TEL;TYPE=CELL:" + phone,
		"NOTE:" + escapeText(FoundPetNote),
		"END:VCARD",
	}

	return strings.Join(lines, "\r\n"), true
}

var textEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)

// escapeText escapes a vCard text value.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
