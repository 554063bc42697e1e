package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	tests := []struct {
		name   string
		cursor Cursor
	}{
		{
			name: "standard values",
			cursor: Cursor{
				Date:      time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
				CreatedAt: time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC),
				ID:        "0b9f6c1e-6a43-4c8a-9d59-3c1f7a1e2b10",
			},
		},
		{
			name:   "zero times",
			cursor: Cursor{ID: "x"},
		},
		{
			name: "non utc offset",
			cursor: Cursor{
				Date:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600)),
				CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("CET", 3600)),
				ID:        "id|with|pipes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := EncodeToken(tt.cursor)
			require.NotEmpty(t, token)
			assert.NotContains(t, token, "+")
			assert.NotContains(t, token, "/")

			got, err := DecodeToken(token)
			require.NoError(t, err)
			assert.True(t, tt.cursor.Date.Equal(got.Date))
			assert.True(t, tt.cursor.CreatedAt.Equal(got.CreatedAt))
			assert.Equal(t, tt.cursor.ID, got.ID)
		})
	}
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{name: "not base64", token: "this is not base64!", message: "base64 decode"},
		{name: "missing separator", token: encode("2026-05-15T00:00:00Z"), message: "split"},
		{name: "missing id", token: encode("2026-05-15T00:00:00Z|2026-05-15T00:00:00Z|"), message: "split"},
		{name: "bad date", token: encode("notadate|2026-05-15T14:30:45Z|id"), message: "date parse"},
		{name: "bad created at", token: encode("2026-05-15T00:00:00Z|later|id"), message: "created_at parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
