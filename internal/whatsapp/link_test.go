package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+62 812-3456-7890", "6281234567890"},
		{"0812-3456-7890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"+1 (555) 010-9999", "15550109999"},
		{"0812 3456 789", "628123456789"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.phone, "62"); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}

func TestMessageLink(t *testing.T) {
	link := MessageLink("0812-3456-7890", "62", "Budi", "budi@example.com", "0811-222-333", "Halo!")
	if !strings.HasPrefix(link, "https://wa.me/6281234567890?") {
		t.Fatalf("link = %q", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	text := u.Query().Get("text")
	want := "Halo, saya Budi\n\nEmail: budi@example.com\nTelp: 0811-222-333\n\nPesan:\nHalo!"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestMessageLinkWithoutVisitorPhone(t *testing.T) {
	link := MessageLink("0812-3456-7890", "62", "Budi", "budi@example.com", "", "Halo!")
	u, _ := url.Parse(link)
	text := u.Query().Get("text")
	if strings.Contains(text, "Telp:") {
		t.Errorf("empty phone must omit the Telp line: %q", text)
	}
}

func TestMessageLinkNoOwnerPhone(t *testing.T) {
	if link := MessageLink("", "62", "Budi", "b@example.com", "", "hi"); link != "" {
		t.Errorf("link = %q, want empty when owner phone is unset", link)
	}
}
