// Package whatsapp builds wa.me deep links with a prefilled message body.
package whatsapp

import (
	"net/url"
	"strings"
)

// Normalize converts a locally formatted phone number to the digit-only
// international form wa.me expects: everything but digits and a leading
// "+" is stripped, the "+" itself is dropped, and a local trunk "0" is
// replaced with the given country code.
func Normalize(phone, countryCode string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned[1:]
	case strings.HasPrefix(cleaned, "0"):
		return countryCode + cleaned[1:]
	default:
		return cleaned
	}
}

// MessageLink builds the deep link to the owner's WhatsApp with the
// contact form's prefilled body. Returns "" when ownerPhone is empty, in
// which case the redirect step is skipped.
func MessageLink(ownerPhone, countryCode, name, email, phone, message string) string {
	if ownerPhone == "" {
		return ""
	}

	var body strings.Builder
	body.WriteString("Halo, saya " + name + "\n\n")
	body.WriteString("Email: " + email)
	if phone != "" {
		body.WriteString("\nTelp: " + phone)
	}
	body.WriteString("\n\nPesan:\n" + message)

	q := url.Values{}
	q.Set("text", body.String())
	return "https://wa.me/" + Normalize(ownerPhone, countryCode) + "?" + q.Encode()
}
