package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromSeverity(t *testing.T) {
	tests := []struct {
		token string
		want  AlertLevel
	}{
		{token: "low", want: LevelLow},
		{token: "medium", want: LevelMedium},
		{token: "high", want: LevelHigh},
		{token: "", want: LevelLow},
		{token: "critical", want: LevelLow},
		{token: "HIGH", want: LevelLow}, // callers normalize case before mapping
	}
	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromSeverity(tt.token))
		})
	}
}
