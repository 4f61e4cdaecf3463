package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

func TestTicketsAvailable(t *testing.T) {
	train := model.Train{CargoNum: 5, PlacesInCargo: 20}

	assert.Equal(t, int64(100), TicketsAvailable(train, 0))
	assert.Equal(t, int64(97), TicketsAvailable(train, 3))
	assert.Equal(t, int64(0), TicketsAvailable(train, 100), "fully booked journey has no capacity left")
}
