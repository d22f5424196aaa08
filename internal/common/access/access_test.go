package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateIsAdmin(t *testing.T) {
	gate := NewGate("prosto_993")

	tests := []struct {
		name     string
		identity Identity
		want     bool
	}{
		{"admin username", Identity{TelegramID: 1, Username: "prosto_993"}, true},
		{"other username", Identity{TelegramID: 2, Username: "anna_k"}, false},
		{"empty username", Identity{TelegramID: 3}, false},
		{"case sensitive", Identity{TelegramID: 4, Username: "Prosto_993"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.IsAdmin(tt.identity))
		})
	}
}

func TestGateEmptyAdminNeverMatches(t *testing.T) {
	gate := NewGate("")

	assert.False(t, gate.IsAdmin(Identity{Username: ""}))
	assert.False(t, gate.IsAdmin(Identity{Username: "anyone"}))
}
