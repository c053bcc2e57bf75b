package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-a", ":3000", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":3000"},
		},
		{
			name:    "flag with equals form",
			args:    []string{"-a=:3000", "-x=junk"},
			allowed: []string{"-a"},
			want:    []string{"-a=:3000"},
		},
		{
			name:    "multiple allowed flags keep order",
			args:    []string{"-a", ":3000", "-d", "postgres://localhost/writely"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", ":3000", "-d", "postgres://localhost/writely"},
		},
		{
			name:    "boolean-style flag followed by another flag",
			args:    []string{"-v", "-a", ":3000"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", ":3000"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", ":3000"},
			allowed: []string{},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}
