package idgen

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out ids that never repeat within one process.
type Generator interface {
	GenerateID() int64
}

// SnowflakeGenerator implements Generator using Twitter Snowflake.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) GenerateID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.node.Generate().Int64()
}

// Sequence is a plain monotonic counter, starting after start.
type Sequence struct {
	n atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.n.Store(start)
	return s
}

func (s *Sequence) GenerateID() int64 {
	return s.n.Add(1)
}

// Prefixed renders the next id behind a short code, e.g. "GA-1853291".
func Prefixed(g Generator, code string) string {
	return code + "-" + strconv.FormatInt(g.GenerateID(), 10)
}
