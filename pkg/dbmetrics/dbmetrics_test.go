package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"SELECT id FROM booking_requests", "select"},
		{"  insert INTO booking_requests (date) VALUES ($1)", "insert"},
		{"UPDATE booking_requests SET status = $1", "update"},
		{"DELETE FROM booking_requests", "delete"},
		{"WITH x AS (SELECT 1) SELECT * FROM x", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, operation(tt.query))
		})
	}
}
