package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    Body
		wantErr string
	}{
		{
			name: "valid star",
			body: Body{ID: "sun", Kind: KindStar, Name: LocalizedText{Default: "Sun"}},
		},
		{
			name: "valid planet",
			body: Body{ID: "earth", Kind: KindPlanet, Name: LocalizedText{Default: "Earth"}, Distance: 20},
		},
		{
			name:    "empty id",
			body:    Body{Kind: KindPlanet, Distance: 1},
			wantErr: "empty id",
		},
		{
			name:    "star with orbit",
			body:    Body{ID: "sun", Kind: KindStar, Name: LocalizedText{Default: "Sun"}, Distance: 5},
			wantErr: "distance 0",
		},
		{
			name:    "planet at origin",
			body:    Body{ID: "earth", Kind: KindPlanet, Name: LocalizedText{Default: "Earth"}},
			wantErr: "distance > 0",
		},
		{
			name:    "unknown kind",
			body:    Body{ID: "x", Kind: "asteroid", Name: LocalizedText{Default: "X"}, Distance: 1},
			wantErr: "unknown kind",
		},
		{
			name:    "missing name",
			body:    Body{ID: "earth", Kind: KindPlanet, Distance: 20},
			wantErr: "no default name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestNarrationTierString(t *testing.T) {
	assert.Equal(t, "remote-full", TierRemoteFull.String())
	assert.Equal(t, "remote-script", TierRemoteScript.String())
	assert.Equal(t, "local", TierLocal.String())
	assert.Equal(t, "unknown", NarrationTier(9).String())
}
