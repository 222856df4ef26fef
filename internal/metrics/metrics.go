// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics instruments the VectorSync engine with Prometheus
// counters and gauges, grounded on the teacher's metrics/metrics.go
// (which talks to prometheus.Registerer directly rather than through an
// intermediate wrapper library).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Engine is the set of counters/gauges a protocol.Node reports.
type Engine struct {
	PublishesTotal       prometheus.Counter
	RolloversTotal       prometheus.Counter
	SyncInterestsSent    prometheus.Counter
	SyncInterestsRecv    prometheus.Counter
	DataInterestsRecv    prometheus.Counter
	FetchesIssuedTotal   prometheus.Counter
	RecoverSweepsTotal   prometheus.Counter
	DataReceivedTotal    prometheus.Counter
	BadFormatTotal       prometheus.Counter
	NoSpaceTotal         prometheus.Counter
	CurrentRound         prometheus.Gauge
	CurrentSelfSeq       prometheus.Gauge
}

// NewEngine registers and returns a new Engine on reg. reg may be nil, in
// which case metrics are tracked but never exported (useful for tests and
// for nodes that don't run a /metrics endpoint).
func NewEngine(reg prometheus.Registerer) (*Engine, error) {
	e := &Engine{
		PublishesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_publishes_total",
			Help: "Total number of data items published by this node.",
		}),
		RolloversTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_round_rollovers_total",
			Help: "Total number of round rollovers triggered by this node's own sequence overflow.",
		}),
		SyncInterestsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_sync_interests_sent_total",
			Help: "Total number of sync interests broadcast after a publish.",
		}),
		SyncInterestsRecv: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_sync_interests_received_total",
			Help: "Total number of sync interests processed from peers.",
		}),
		DataInterestsRecv: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_data_interests_received_total",
			Help: "Total number of recovery interests processed for this node's own data prefix.",
		}),
		FetchesIssuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_fetches_issued_total",
			Help: "Total number of recovery interests issued for missing data.",
		}),
		RecoverSweepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_recover_sweeps_total",
			Help: "Total number of round-sweep recovery interests issued for multi-round jumps.",
		}),
		DataReceivedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_data_received_total",
			Help: "Total number of data packets successfully processed.",
		}),
		BadFormatTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_bad_format_total",
			Help: "Total number of inbound interests/data rejected as malformed.",
		}),
		NoSpaceTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vsync_no_space_total",
			Help: "Total number of outgoing interest sends that failed.",
		}),
		CurrentRound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vsync_current_round",
			Help: "This node's current round number.",
		}),
		CurrentSelfSeq: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vsync_current_self_seq",
			Help: "This node's current sequence number within the round.",
		}),
	}

	if reg == nil {
		return e, nil
	}

	collectors := []prometheus.Collector{
		e.PublishesTotal, e.RolloversTotal, e.SyncInterestsSent,
		e.SyncInterestsRecv, e.DataInterestsRecv, e.FetchesIssuedTotal, e.RecoverSweepsTotal,
		e.DataReceivedTotal, e.BadFormatTotal, e.NoSpaceTotal,
		e.CurrentRound, e.CurrentSelfSeq,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// NewNoOp returns an Engine backed by unregistered collectors, for tests
// that want the nil-safety of calling into a real *Engine without a
// registry around.
func NewNoOp() *Engine {
	e, _ := NewEngine(nil)
	return e
}
