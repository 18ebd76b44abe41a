package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInstitution(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kluniversity", "kluniversity"},
		{"KLUniversity", "kluniversity"},
		{"  KLUNIVERSITY ", "kluniversity"},
		{"KL University", "kl university"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeInstitution(tc.in))
	}
}
