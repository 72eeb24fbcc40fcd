package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "a@b.com", true},
		{"subdomain", "first.last@mail.example.org", true},
		{"plus tag", "me+portfolio@example.io", true},
		{"no tld", "a@b", false},
		{"no local part", "@b.com", false},
		{"no at", "bad", false},
		{"no at with dot", "a.b.com", false},
		{"two ats", "a@b@c.com", false},
		{"dot right after at", "a@.com", false},
		{"trailing dot", "a@b.", false},
		{"empty", "", false},
		{"dot only before at", "a.b@com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}
