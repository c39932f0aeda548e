// Package idgenerator hands out the ids of matches and rules. Ids are
// version 7 uuids so they sort by creation time and fit the uuid columns.
package idgenerator

import (
	"github.com/google/uuid"
)

type Generator interface {
	Generate() string
}

type IDGenerator struct {
	newUUID func() (uuid.UUID, error)
}

func New() Generator {
	return &IDGenerator{newUUID: uuid.NewV7}
}

// Generate falls back to a random uuid when the clock based one cannot be
// built.
func (g *IDGenerator) Generate() string {
	id, err := g.newUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
