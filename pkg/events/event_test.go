package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := QueryAnswered("u1", "laptop", 2, at)

	env := ToEnvelope(e)
	assert.Equal(t, TypeQueryAnswered, env.Type)
	assert.NotEmpty(t, env.ID)

	back := env.Event()
	assert.Equal(t, e.ID, back.EventID())
	assert.Equal(t, at, back.Timestamp())
	assert.Equal(t, "laptop", back.Payload()["query"])
}

func TestEventsHaveDistinctIDs(t *testing.T) {
	now := time.Now()
	a := QueryModeExited("u1", "salir", now)
	b := QueryModeExited("u1", "salir", now)
	assert.NotEqual(t, a.EventID(), b.EventID())
}
