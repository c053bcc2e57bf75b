package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string hours", input: `"24h"`, want: 24 * time.Hour},
		{name: "string seconds", input: `"30s"`, want: 30 * time.Second},
		{name: "integer nanoseconds", input: `5000000000`, want: 5 * time.Second},
		{name: "bad string", input: `"yesterday"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: 90 * time.Minute}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))
}

func TestDuration_RoundTripInStruct(t *testing.T) {
	type cfg struct {
		TokenValidityDuration Duration `json:"token_validity_duration"`
	}

	var c cfg
	require.NoError(t, json.Unmarshal([]byte(`{"token_validity_duration":"24h"}`), &c))
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration.Duration)
}
