package services

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// Clock supplies the current time to use cases. Injected so tests and
// alternative environments can control timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies fresh unique identifiers for new aggregates.
type IDGenerator interface {
	NextID() kernel.UUID
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the wall clock in UTC.
func SystemClock() Clock {
	return systemClock{}
}

type randomIDs struct{}

func (randomIDs) NextID() kernel.UUID {
	return kernel.NewUUID()
}

// RandomIDs returns an IDGenerator producing random version 4 UUIDs.
func RandomIDs() IDGenerator {
	return randomIDs{}
}
