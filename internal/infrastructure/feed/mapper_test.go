package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFeed(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCount int
		wantStamp string
		wantErr   bool
	}{
		{
			name:      "envelope with items",
			body:      `{"generated_at": "01.02.2025 10:00:00", "items": [{"name": "A"}, {"name": "B"}]}`,
			wantCount: 2,
			wantStamp: "01.02.2025 10:00:00",
		},
		{
			name:      "envelope with products key",
			body:      `{"products": [{"name": "A"}]}`,
			wantCount: 1,
		},
		{
			name:      "bare array",
			body:      `[{"name": "A"}]`,
			wantCount: 1,
		},
		{
			name:      "bare array with leading whitespace",
			body:      "\n\t [{\"name\": \"A\"}]",
			wantCount: 1,
		},
		{
			name:      "empty items array is a valid empty catalog",
			body:      `{"items": []}`,
			wantCount: 0,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
		{
			name:    "object without a record array",
			body:    `{"generated_at": "now"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			body:    `{"items": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, stamp, err := decodeFeed([]byte(tt.body))

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.wantCount)
			assert.Equal(t, tt.wantStamp, stamp)
		})
	}
}
