package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStampsUniqueIDs(t *testing.T) {
	at := time.Now()
	a := New(PostCreated, 1, "post", 2, at)
	b := New(PostCreated, 1, "post", 2, at)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, PostCreated, a.Type)
	assert.Equal(t, uint(2), a.TargetID)
	assert.Equal(t, at, a.OccurredAt)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}
