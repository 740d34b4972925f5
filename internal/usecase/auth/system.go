package auth

import (
	"time"

	"github.com/google/uuid"
)

type UUIDGenerator struct{}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type SystemClock struct{}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}
