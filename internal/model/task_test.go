package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskIsExpired(t *testing.T) {
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     time.Time
		done    bool
		expired bool
	}{
		{
			name:    "past due and open",
			due:     now.Add(-time.Minute),
			done:    false,
			expired: true,
		},
		{
			name:    "past due but completed",
			due:     now.Add(-time.Minute),
			done:    true,
			expired: false,
		},
		{
			name:    "due in the future",
			due:     now.Add(time.Hour),
			done:    false,
			expired: false,
		},
		{
			name:    "due exactly now",
			due:     now,
			done:    false,
			expired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Title: "Test Task", Due: tt.due, Completed: tt.done}
			assert.Equal(t, tt.expired, task.IsExpired(now))
		})
	}
}

func TestTaskIsExpiredFlipsWithCompleted(t *testing.T) {
	now := time.Now()
	task := &Task{Title: "Test Task", Due: now.Add(-24 * time.Hour)}

	assert.True(t, task.IsExpired(now))
	task.Completed = true
	assert.False(t, task.IsExpired(now))
}
