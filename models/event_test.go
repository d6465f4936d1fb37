package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	testCases := []struct {
		name    string
		event   string
		entity  string
		actorID uint
		data    interface{}
		wantErr bool
	}{
		{
			name:    "Valid event",
			event:   "task.created",
			entity:  "task",
			actorID: 7,
			data:    map[string]interface{}{"task_id": 1},
			wantErr: false,
		},
		{
			name:    "Invalid JSON data",
			event:   "task.created",
			entity:  "task",
			data:    make(chan int), // Unmarshalable type
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := NewEvent(tc.event, tc.entity, tc.actorID, tc.data)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, event)
			assert.NotEqual(t, uuid.Nil, event.ID)
			assert.Equal(t, tc.event, event.Event)
			assert.Equal(t, tc.entity, event.Entity)
			assert.Equal(t, tc.actorID, event.ActorID)
			assert.Equal(t, 1, event.Version)
			assert.JSONEq(t, `{"task_id":1}`, string(event.Data))
		})
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	event, err := NewEvent("task.deleted", "task", 3, map[string]interface{}{"task_id": 9})
	assert.NoError(t, err)

	data, err := event.ToJSON()
	assert.NoError(t, err)

	var decoded Event
	assert.NoError(t, decoded.FromJSON(data))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "task.deleted", decoded.Event)
	assert.Equal(t, uint(3), decoded.ActorID)
}
