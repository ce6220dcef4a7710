package usecases

import (
	"strings"

	"scholars-connect.backend/internal/domain/entities"
)

// VisibleContact projects a mentor's contact block for a viewer. A channel
// shows through when the mentor marked it visible or the viewer has
// unlocked the profile via an accepted mentorship request. Hidden or empty
// channels come back nil.
func VisibleContact(contact entities.ContactInfo, unlocked bool) entities.ContactView {
	view := entities.ContactView{PreferredMethod: contact.PreferredMethod}
	if contact.Email != "" && (contact.EmailVisible || unlocked) {
		v := contact.Email
		view.Email = &v
	}
	if contact.Phone != "" && (contact.PhoneVisible || unlocked) {
		v := contact.Phone
		view.Phone = &v
	}
	if contact.Whatsapp != "" && (contact.WhatsappVisible || unlocked) {
		v := contact.Whatsapp
		view.Whatsapp = &v
	}
	return view
}

// SynthesizeDisclosure renders a mentor's contact block as the message
// written into an accepted request's notes. Every populated channel is
// listed, one per line, WhatsApp first, then email, then phone; the channel
// matching the mentor's preferred method is annotated. Returns the empty
// string when no channel is populated.
func SynthesizeDisclosure(contact entities.ContactInfo) string {
	var lines []string

	add := func(label, value string, method entities.ContactMethod) {
		if value == "" {
			return
		}
		line := label + ": " + value
		if contact.PreferredMethod == method {
			line += " (preferred)"
		}
		lines = append(lines, line)
	}

	add("WhatsApp", contact.Whatsapp, entities.ContactMethodWhatsapp)
	add("Email", contact.Email, entities.ContactMethodEmail)
	add("Phone", contact.Phone, entities.ContactMethodPhone)

	return strings.Join(lines, "\n")
}
