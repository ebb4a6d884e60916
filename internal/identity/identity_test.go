package identity_test

import (
	"testing"

	"github.com/ruminaider/profilectl/internal/identity"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"flag wins", []string{"alice", "bob", "carol"}, "alice"},
		{"blank flag falls through", []string{"", "  ", "carol"}, "carol"},
		{"trims", []string{" dave "}, "dave"},
		{"nothing set", []string{"", ""}, identity.Guest},
		{"no candidates", nil, identity.Guest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.Resolve(tt.candidates...))
		})
	}
}

func TestIsGuest(t *testing.T) {
	assert.True(t, identity.IsGuest("guest"))
	assert.False(t, identity.IsGuest("Guest"))
	assert.False(t, identity.IsGuest("alice"))
}
