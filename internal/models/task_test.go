package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusNavigation(t *testing.T) {
	assert.Equal(t, StatusInProgress, NextStatus(StatusTodo))
	assert.Equal(t, StatusDone, NextStatus(StatusInProgress))
	assert.Equal(t, StatusDone, NextStatus(StatusDone), "right edge stays put")

	assert.Equal(t, StatusInProgress, PrevStatus(StatusDone))
	assert.Equal(t, StatusTodo, PrevStatus(StatusInProgress))
	assert.Equal(t, StatusTodo, PrevStatus(StatusTodo), "left edge stays put")

	assert.Equal(t, "Archived", NextStatus("Archived"), "unknown status unchanged")
	assert.Equal(t, "Archived", PrevStatus("Archived"))
}

func TestValidStatus(t *testing.T) {
	for _, s := range TaskStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Archived"))
	assert.False(t, ValidStatus(""))
}
