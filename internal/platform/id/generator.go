package id

import (
	"strings"

	"github.com/google/uuid"
)

// Generator derives opaque public IDs from natural keys.
type Generator interface {
	NewID(kind string, naturalKey ...string) string
}

// NameBased returns UUIDv5 values, so the same natural key always maps to the
// same ID across runs and sinks.
type NameBased struct {
	namespace uuid.UUID
}

var defaultNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://arena.total-waterpolo.com/"))

func NewNameBased() *NameBased {
	return &NameBased{namespace: defaultNamespace}
}

func (g *NameBased) NewID(kind string, naturalKey ...string) string {
	name := kind + "|" + strings.Join(naturalKey, "|")
	return uuid.NewSHA1(g.namespace, []byte(name)).String()
}
