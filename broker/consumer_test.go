package broker

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminder-app/reminder/models"
)

func TestConsumerDispatch(t *testing.T) {
	var logs bytes.Buffer
	c := &Consumer{logger: zerolog.New(&logs)}

	event, err := models.NewEvent(string(TaskDeleted), "task", 3, map[string]interface{}{"task_id": 9})
	require.NoError(t, err)
	payload, err := event.ToJSON()
	require.NoError(t, err)

	var received []*models.Event
	handler := func(subject string, e *models.Event) {
		assert.Equal(t, SubjectFor(TaskDeleted), subject)
		received = append(received, e)
	}

	c.dispatch(SubjectFor(TaskDeleted), payload, handler)
	c.dispatch(SubjectFor(TaskDeleted), []byte("not json"), handler)

	require.Len(t, received, 1)
	assert.Equal(t, event.ID, received[0].ID)
	assert.Equal(t, uint(3), received[0].ActorID)
	assert.JSONEq(t, `{"task_id":9}`, string(received[0].Data))
	assert.Contains(t, logs.String(), "skipping undecodable event")
}

func TestStartConsumer_Unreachable(t *testing.T) {
	_, err := StartConsumer("nats://127.0.0.1:1", []string{AllSubjects}, func(string, *models.Event) {}, zerolog.Nop())
	assert.Error(t, err)
}

func TestConsumerClose_WithoutConnection(t *testing.T) {
	c := &Consumer{logger: zerolog.Nop()}
	assert.NotPanics(t, c.Close)
}
