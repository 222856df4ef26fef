// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the process-level configuration for a VectorSync
// node: its identity within the roster, the wire constants that must
// agree across the whole group, and the local publish/demo parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Defaults mirror spec.md §6.
const (
	DefaultPublishIntervalMS = 500
	DefaultBytesPerPkt       = 10
	DefaultMaxSeqNum         = 15
	DefaultObservationWindow = 8
	DefaultInterestLifetime  = 1000 * time.Millisecond
	DefaultRetryLifetime     = 20 * DefaultInterestLifetime

	// MaxGroupSize is the hard ceiling on N from spec.md §3 (NodeId fits
	// in a single version-vector byte's worth of peers we care about).
	MaxGroupSize = 16
)

// Config is the full set of knobs a VectorSync process needs at startup.
// It is loaded once and never mutated afterwards.
type Config struct {
	NodeID            int      `json:"nodeId"`
	PeerPrefixes      []string `json:"peerPrefixes"`
	PublishIntervalMS int      `json:"publishIntervalMs"`
	BytesPerPkt       int      `json:"bytesPerPkt"`
	MaxSeqNum         int      `json:"maxSeqNum"`
	ObservationWindow int      `json:"observationWindow"`

	// HMACKey, if non-empty, selects HMAC_SHA256 signing instead of
	// DIGEST_SHA256 for data packets this node publishes.
	HMACKey []byte `json:"hmacKey,omitempty"`
}

// Builder assembles a Config with validation deferred to Build, grounded
// on the teacher's fluent config.Builder (config/builder.go): each With*
// call records the first error encountered and becomes a no-op after
// that, so call sites don't need to check errors after every step.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder starts from spec.md §6's defaults.
func NewBuilder() *Builder {
	return &Builder{
		cfg: &Config{
			PublishIntervalMS: DefaultPublishIntervalMS,
			BytesPerPkt:       DefaultBytesPerPkt,
			MaxSeqNum:         DefaultMaxSeqNum,
			ObservationWindow: DefaultObservationWindow,
		},
	}
}

// WithNodeID sets the node's position in the roster.
func (b *Builder) WithNodeID(id int) *Builder {
	if b.err != nil {
		return b
	}
	if id < 0 {
		b.err = fmt.Errorf("nodeId must be >= 0, got %d", id)
		return b
	}
	b.cfg.NodeID = id
	return b
}

// WithPeerPrefixes sets the ordered roster of data prefixes.
func (b *Builder) WithPeerPrefixes(prefixes []string) *Builder {
	if b.err != nil {
		return b
	}
	if len(prefixes) == 0 {
		b.err = fmt.Errorf("peerPrefixes must not be empty")
		return b
	}
	if len(prefixes) > MaxGroupSize {
		b.err = fmt.Errorf("group size %d exceeds MaxGroupSize %d", len(prefixes), MaxGroupSize)
		return b
	}
	b.cfg.PeerPrefixes = prefixes
	return b
}

// WithMaxSeqNum overrides MAX_SEQ_NUM (spec.md §3 calls out 15 and 255 as
// observed builds; any value in [1,255] is accepted).
func (b *Builder) WithMaxSeqNum(max int) *Builder {
	if b.err != nil {
		return b
	}
	if max < 1 || max > 255 {
		b.err = fmt.Errorf("maxSeqNum must be in [1,255], got %d", max)
		return b
	}
	b.cfg.MaxSeqNum = max
	return b
}

// WithObservationWindow overrides W, the observation log's ring size.
func (b *Builder) WithObservationWindow(w int) *Builder {
	if b.err != nil {
		return b
	}
	if w < 1 {
		b.err = fmt.Errorf("observationWindow must be >= 1, got %d", w)
		return b
	}
	b.cfg.ObservationWindow = w
	return b
}

// WithPublishIntervalMS overrides the millisecond spacing between
// publish ticks.
func (b *Builder) WithPublishIntervalMS(ms int) *Builder {
	if b.err != nil {
		return b
	}
	if ms <= 0 {
		b.err = fmt.Errorf("publishIntervalMs must be > 0, got %d", ms)
		return b
	}
	b.cfg.PublishIntervalMS = ms
	return b
}

// WithBytesPerPkt overrides how many content bytes go into each
// published item.
func (b *Builder) WithBytesPerPkt(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n <= 0 {
		b.err = fmt.Errorf("bytesPerPkt must be > 0, got %d", n)
		return b
	}
	b.cfg.BytesPerPkt = n
	return b
}

// WithHMACKey switches signing to HMAC_SHA256 with the given key.
func (b *Builder) WithHMACKey(key []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.HMACKey = key
	return b
}

// Build validates and returns the assembled Config.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	clone := *b.cfg
	return &clone, nil
}

// Validate checks invariants that the builder can't catch incrementally
// (cross-field checks, and checks on values set directly by Load).
func (c *Config) Validate() error {
	if len(c.PeerPrefixes) == 0 {
		return fmt.Errorf("peerPrefixes must not be empty")
	}
	if len(c.PeerPrefixes) > MaxGroupSize {
		return fmt.Errorf("group size %d exceeds MaxGroupSize %d", len(c.PeerPrefixes), MaxGroupSize)
	}
	if c.NodeID < 0 || c.NodeID >= len(c.PeerPrefixes) {
		return fmt.Errorf("nodeId %d out of range [0,%d)", c.NodeID, len(c.PeerPrefixes))
	}
	if c.MaxSeqNum < 1 || c.MaxSeqNum > 255 {
		return fmt.Errorf("maxSeqNum must be in [1,255], got %d", c.MaxSeqNum)
	}
	if c.ObservationWindow < 1 {
		return fmt.Errorf("observationWindow must be >= 1, got %d", c.ObservationWindow)
	}
	if c.PublishIntervalMS <= 0 {
		return fmt.Errorf("publishIntervalMs must be > 0, got %d", c.PublishIntervalMS)
	}
	if c.BytesPerPkt <= 0 {
		return fmt.Errorf("bytesPerPkt must be > 0, got %d", c.BytesPerPkt)
	}
	return nil
}

// PublishInterval is PublishIntervalMS as a time.Duration.
func (c *Config) PublishInterval() time.Duration {
	return time.Duration(c.PublishIntervalMS) * time.Millisecond
}

// GroupSize is N, the roster size.
func (c *Config) GroupSize() int {
	return len(c.PeerPrefixes)
}

// Load reads a JSON config file from disk and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{
		PublishIntervalMS: DefaultPublishIntervalMS,
		BytesPerPkt:       DefaultBytesPerPkt,
		MaxSeqNum:         DefaultMaxSeqNum,
		ObservationWindow: DefaultObservationWindow,
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
