package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		username string
		want     string
	}{
		{"full name", "Maria", "Santos", "maria", "Maria Santos"},
		{"first only", "Maria", "", "maria", "Maria"},
		{"username fallback", "", "", "maria", "maria"},
		{"last without first falls back", "", "Santos", "maria", "maria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.first, tt.last, tt.username))
		})
	}
}
