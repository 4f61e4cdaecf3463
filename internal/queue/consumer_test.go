package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestHandleMessage(t *testing.T) {
	chdir(t, t.TempDir())

	ev := OrderConfirmedEvent{
		OrderID: 12,
		UserID:  3,
		Tickets: []TicketEntry{
			{JourneyID: 7, Route: "Kyiv-Lviv", Train: "Express", DepartureTime: "2026-03-01T08:00:00Z", Cargo: 2, Seat: 14},
			{JourneyID: 7, Route: "Kyiv-Lviv", Train: "Express", DepartureTime: "2026-03-01T08:00:00Z", Cargo: 2, Seat: 15},
		},
		ConfirmedAt: "2026-03-01T07:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))

	data, err := os.ReadFile(filepath.Join("logs", "orders.log"))
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "order_id=12")
	assert.Contains(t, line, "user_id=3")
	assert.Contains(t, line, "tickets=2")
	assert.Contains(t, line, "Kyiv-Lviv 2/14")
	assert.Contains(t, line, "Kyiv-Lviv 2/15")
}

func TestHandleMessageMalformed(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Error(t, handleMessage([]byte("not json")))
}
