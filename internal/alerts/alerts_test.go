package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_Notify(t *testing.T) {
	q := NewQueue()

	q.Success("saved")
	q.Error("boom")

	alerts := q.Alerts()
	require.Len(t, alerts, 2)

	assert.Equal(t, VariantSuccess, alerts[0].Variant)
	assert.Equal(t, "saved", alerts[0].Message)
	assert.Equal(t, VariantDanger, alerts[1].Variant)
	assert.True(t, alerts[0].Timeout.After(alerts[0].Timestamp), "timeout should be absolute and in the future")
}

func TestQueue_Close(t *testing.T) {
	q := NewQueue()

	q.Success("first")
	q.Success("second")
	alerts := q.Alerts()

	q.Close(alerts[0])

	left := q.Alerts()
	require.Len(t, left, 1)
	assert.Equal(t, alerts[1].ID, left[0].ID, "close should remove by identity")

	q.Close(alerts[0]) // closing again is a no-op
	require.Len(t, q.Alerts(), 1)
}

func TestQueue_Sweep(t *testing.T) {
	t.Run("expires oldest first then re-arms", func(t *testing.T) {
		q := NewQueue()
		defer q.Stop()

		q.Notify(Update{Message: "first", Timeout: 30 * time.Millisecond})
		q.Notify(Update{Message: "second", Timeout: 150 * time.Millisecond})
		second := q.Alerts()[1]

		q.Sweep()

		require.Eventually(t, func() bool {
			alerts := q.Alerts()
			return len(alerts) == 1 && alerts[0].ID == second.ID
		}, time.Second, 5*time.Millisecond, "the head entry should expire first")

		require.Eventually(t, func() bool {
			return len(q.Alerts()) == 0
		}, time.Second, 5*time.Millisecond, "the re-armed sweep should expire the next entry")
	})

	t.Run("sweep on empty queue", func(t *testing.T) {
		q := NewQueue()

		q.Sweep() // nothing to arm, must not panic
	})

	t.Run("re-sweep replaces the armed timer", func(t *testing.T) {
		q := NewQueue()
		defer q.Stop()

		q.Notify(Update{Message: "first", Timeout: 40 * time.Millisecond})
		q.Sweep()
		q.Sweep() // consumer re-arms on every render

		require.Eventually(t, func() bool {
			return len(q.Alerts()) == 0
		}, time.Second, 5*time.Millisecond)
	})
}
