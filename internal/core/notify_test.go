package core

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotificationLink(t *testing.T) {
	t.Run("Round Trip Without Schedule", func(t *testing.T) {
		c := Consultation{ID: "c1", VideoURL: "https://v/x"}
		p := Patient{Name: "Asha", Contact: "+91 98765 43210"}

		link, err := BuildNotificationLink(c, p)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", u.Host)
		assert.Equal(t, "/919876543210", u.Path)

		body := u.Query().Get("text")
		assert.True(t, strings.HasPrefix(body, "Hello Asha,"), "body was %q", body)
		assert.Contains(t, body, "https://v/x")
		assert.NotContains(t, body, " at ")
	})

	t.Run("Schedule Appended When Present", func(t *testing.T) {
		scheduled := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.Local)
		c := Consultation{ID: "c1", VideoURL: "https://v/x", ScheduledAt: &scheduled}
		p := Patient{Name: "Asha", Contact: "9876543210"}

		link, err := BuildNotificationLink(c, p)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		body := u.Query().Get("text")
		assert.Contains(t, body, " at "+scheduled.Format(notifyTimeLayout))
	})

	t.Run("Nameless Patient Still Gets A Greeting", func(t *testing.T) {
		c := Consultation{ID: "c1", VideoURL: "https://v/x"}
		p := Patient{Contact: "9876543210"}

		link, err := BuildNotificationLink(c, p)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(u.Query().Get("text"), "Hello ,"))
	})

	t.Run("No Contact", func(t *testing.T) {
		c := Consultation{ID: "c1", VideoURL: "https://v/x"}

		_, err := BuildNotificationLink(c, Patient{Name: "Asha", Contact: ""})

		assert.ErrorIs(t, err, ErrNoContact)
	})

	t.Run("Only A Plus Sign Is No Contact", func(t *testing.T) {
		c := Consultation{ID: "c1", VideoURL: "https://v/x"}

		_, err := BuildNotificationLink(c, Patient{Name: "Asha", Contact: " + "})

		assert.ErrorIs(t, err, ErrNoContact)
	})
}

func TestContactDigits(t *testing.T) {
	tests := []struct {
		name    string
		contact string
		want    string
	}{
		{"Spaces And Plus", "+91 98765 43210", "919876543210"},
		{"Bare Digits", "9876543210", "9876543210"},
		{"Tabs And Newlines", "\t98765\n43210 ", "9876543210"},
		{"Inner Plus Survives", "+91+98765", "91+98765"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contactDigits(tt.contact))
		})
	}
}
