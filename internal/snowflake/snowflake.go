// Package snowflake generates unique, roughly time-sortable 64-bit ids
// usable as primary keys across horizontally scaled processes.
package snowflake

import (
	"crypto/sha256"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
)

// Epoch is the custom epoch (2025-05-01 00:00:00 UTC) subtracted from the
// millisecond timestamp before shifting.
const Epoch int64 = 1746028800000

const (
	workerIDBits     = 5
	datacenterIDBits = 5
	sequenceBits     = 12

	MaxWorkerID     = -1 ^ (-1 << workerIDBits)
	MaxDatacenterID = -1 ^ (-1 << datacenterIDBits)

	workerIDShift     = sequenceBits
	datacenterIDShift = sequenceBits + workerIDBits
	timestampShift    = sequenceBits + workerIDBits + datacenterIDBits
	sequenceMask      = -1 ^ (-1 << sequenceBits)
)

// Generator produces ids laid out as
// (timestamp_ms - epoch) << 22 | datacenter << 17 | worker << 12 | sequence.
// It is safe for concurrent use within one process.
type Generator struct {
	mu            sync.Mutex
	lastTimestamp int64
	sequence      int64
	workerID      int64
	datacenterID  int64
	now           func() int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkerID pins the worker id instead of deriving it from host identity.
func WithWorkerID(id int64) Option {
	return func(g *Generator) { g.workerID = id }
}

// WithDatacenterID sets the datacenter id (default 0).
func WithDatacenterID(id int64) Option {
	return func(g *Generator) { g.datacenterID = id }
}

// New constructs a Generator. When no worker id is configured it is derived
// from a hash of hostname, MAC address and pid, so co-located instances
// rarely collide.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		lastTimestamp: -1,
		workerID:      deriveWorkerID(),
		now:           currentMillis,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.workerID < 0 || g.workerID > MaxWorkerID {
		return nil, fmt.Errorf("snowflake: worker id must be between 0 and %d", MaxWorkerID)
	}
	if g.datacenterID < 0 || g.datacenterID > MaxDatacenterID {
		return nil, fmt.Errorf("snowflake: datacenter id must be between 0 and %d", MaxDatacenterID)
	}
	return g, nil
}

// NextID returns the next id. Ids are strictly increasing per process.
// If the wall clock is observed to move backwards the process is in an
// unrecoverable state and NextID panics rather than risk duplicate ids.
func (g *Generator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	timestamp := g.now()
	if timestamp < g.lastTimestamp {
		panic(fmt.Sprintf("snowflake: clock moved backwards, refusing to generate id for %dms", g.lastTimestamp-timestamp))
	}

	if timestamp == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			timestamp = g.waitNextMillis(g.lastTimestamp)
		}
	} else {
		g.sequence = 0
	}
	g.lastTimestamp = timestamp

	return (timestamp-Epoch)<<timestampShift |
		g.datacenterID<<datacenterIDShift |
		g.workerID<<workerIDShift |
		g.sequence
}

// WorkerID returns the configured or derived worker id.
func (g *Generator) WorkerID() int64 { return g.workerID }

// DatacenterID returns the configured datacenter id.
func (g *Generator) DatacenterID() int64 { return g.datacenterID }

func (g *Generator) waitNextMillis(last int64) int64 {
	timestamp := g.now()
	for timestamp <= last {
		timestamp = g.now()
	}
	return timestamp
}

func currentMillis() int64 {
	return time.Now().UnixMilli()
}

func deriveWorkerID() int64 {
	hostname, _ := os.Hostname()

	var mac string
	if ifaces, err := net.Interfaces(); err == nil {
		for _, iface := range ifaces {
			if iface.Flags&net.FlagUp == 0 || len(iface.HardwareAddr) == 0 {
				continue
			}
			mac = iface.HardwareAddr.String()
			break
		}
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%d", hostname, mac, os.Getpid())))
	return int64(sum[0] & MaxWorkerID)
}
