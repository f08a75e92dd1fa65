package testfixtures

import (
	"fmt"
	"sync/atomic"
)

// IDGenerator yields predictable appointment ids: "<prefix>-1", "<prefix>-2", ...
type IDGenerator struct {
	prefix string
	n      atomic.Uint64
}

func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = "appt"
	}
	return &IDGenerator{prefix: prefix}
}

func (g *IDGenerator) Next() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}
