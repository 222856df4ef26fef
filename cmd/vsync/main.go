// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Command vsync runs the VectorSync reference demo: two in-process peers
// ("alice" and "bob"), wired together over an internal/apprt/memrt Hub,
// with alice publishing a fixed article in chunks and bob chasing it via
// sync interests and recovery fetches — the same shape as the original
// source's two-board examples/ndn_sync/vsync.c demo, minus the radio.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ndnsync/vectorsync/internal/apprt/memrt"
	"github.com/ndnsync/vectorsync/internal/config"
	"github.com/ndnsync/vectorsync/internal/demodata"
	"github.com/ndnsync/vectorsync/internal/metrics"
	"github.com/ndnsync/vectorsync/internal/protocol"
	"github.com/ndnsync/vectorsync/internal/roster"
	"github.com/ndnsync/vectorsync/internal/vlog"
	"github.com/ndnsync/vectorsync/internal/wire"
)

var rootCmd = &cobra.Command{
	Use:   "vsync",
	Short: "VectorSync demo: two peers synchronizing a dataset over NDN version vectors",
	Long: `vsync runs the VectorSync reference demo in a single process: an
in-memory Hub stands in for the NDN link, "alice" publishes a fixed
article in chunks, and "bob" tracks it via sync interests, gap fetches,
and multi-round recovery sweeps.`,
	RunE: runDemo,
}

func main() {
	rootCmd.Flags().StringSlice("peers", []string{"alice", "bob"}, "ordered roster of peer data prefixes")
	rootCmd.Flags().Int("max-seq-num", config.DefaultMaxSeqNum, "highest sequence number before a round rolls over")
	rootCmd.Flags().Int("observation-window", config.DefaultObservationWindow, "observation log ring size (rounds)")
	rootCmd.Flags().Int("publish-interval-ms", config.DefaultPublishIntervalMS, "milliseconds between publish ticks")
	rootCmd.Flags().Int("bytes-per-pkt", config.DefaultBytesPerPkt, "bytes of article content per published item")
	rootCmd.Flags().Duration("duration", 15*time.Second, "how long to run the demo before exiting")
	rootCmd.Flags().String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :2112)")
	rootCmd.Flags().String("hmac-key", "", "if set, sign published data with HMAC_SHA256 using this key instead of DIGEST_SHA256")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vsync: %v\n", err)
		os.Exit(1)
	}
}

type peer struct {
	name string
	node *protocol.Node
	rt   *memrt.Runtime
	reg  *prometheus.Registry
}

func runDemo(cmd *cobra.Command, _ []string) error {
	peers, _ := cmd.Flags().GetStringSlice("peers")
	maxSeqNum, _ := cmd.Flags().GetInt("max-seq-num")
	obsWindow, _ := cmd.Flags().GetInt("observation-window")
	publishIntervalMS, _ := cmd.Flags().GetInt("publish-interval-ms")
	bytesPerPkt, _ := cmd.Flags().GetInt("bytes-per-pkt")
	duration, _ := cmd.Flags().GetDuration("duration")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	hmacKey, _ := cmd.Flags().GetString("hmac-key")

	r, err := roster.New(peers)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}

	log := vlog.New("vsync")
	hub := memrt.NewHub(log)
	defer hub.Close()

	mux := http.NewServeMux()
	members := make([]*peer, r.Size())
	for i := 0; i < r.Size(); i++ {
		id := roster.NodeID(i)
		cfg, err := config.NewBuilder().
			WithNodeID(i).
			WithPeerPrefixes(peers).
			WithMaxSeqNum(maxSeqNum).
			WithObservationWindow(obsWindow).
			WithPublishIntervalMS(publishIntervalMS).
			WithBytesPerPkt(bytesPerPkt).
			WithHMACKey([]byte(hmacKey)).
			Build()
		if err != nil {
			return fmt.Errorf("building config for %s: %w", r.Prefix(id), err)
		}

		reg := prometheus.NewRegistry()
		eng, err := metrics.NewEngine(reg)
		if err != nil {
			return fmt.Errorf("registering metrics for %s: %w", r.Prefix(id), err)
		}

		rt := hub.NewRuntime(r.Prefix(id))
		nodeLog := vlog.New("vsync." + r.Prefix(id))
		node := protocol.New(cfg, r, id, rt, eng, nodeLog)
		members[i] = &peer{name: r.Prefix(id), node: node, rt: rt, reg: reg}

		if metricsAddr != "" {
			mux.Handle("/metrics/"+r.Prefix(id), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		}
	}

	for _, p := range members {
		registerHandlers(p)
	}

	if metricsAddr != "" {
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn("metrics server exited", "err", err)
			}
		}()
		defer srv.Close()
	}

	// Route even the first publish tick through the hub's single dispatch
	// goroutine, so it can never race with an inbound interest/data event
	// for the same Node — Node has no internal locking of its own.
	publisher := members[0]
	chunker := demodata.NewChunker(demodata.Article, bytesPerPkt)
	if err := publisher.rt.Schedule(0, func() { scheduleNextChunk(publisher, chunker) }); err != nil {
		return fmt.Errorf("scheduling first publish: %w", err)
	}

	log.Info("demo running", "peers", peers, "duration", duration)
	time.Sleep(duration)

	// Read final state back on the hub's own dispatch goroutine too, so
	// this observation can never race a publish/receive event still in
	// flight on that goroutine.
	type snapshot struct {
		round uint32
		seq   uint8
	}
	snapshots := make([]snapshot, len(members))
	done := make(chan struct{})
	_ = hub.NewRuntime("demo-observer").Schedule(0, func() {
		for i, p := range members {
			snapshots[i] = snapshot{round: p.node.Round(), seq: p.node.SelfSeq()}
		}
		close(done)
	})
	<-done

	log.Info("demo finished",
		"alice_round", snapshots[0].round, "alice_seq", snapshots[0].seq,
		"bob_round", snapshots[len(snapshots)-1].round, "bob_seq", snapshots[len(snapshots)-1].seq)
	return nil
}

// registerHandlers wires p's sync and data prefixes to its Node, routing
// any data arriving on the back of a fetch through the Node itself so
// LDI/observation-log state stays consistent regardless of path.
func registerHandlers(p *peer) {
	onData := func(data []byte) {}

	if err := p.rt.RegisterPrefix(p.node.SyncPrefix(), func(interest []byte) {
		if err := p.node.OnSyncInterest(interest, onData); err != nil {
			p.node.Log().Debug("sync interest rejected", "err", err)
		}
	}); err != nil {
		p.node.Log().Warn("failed to register sync prefix", "err", err)
	}

	if err := p.rt.RegisterPrefix(p.node.DataPrefix(), func(interest []byte) {
		if err := p.node.OnDataInterest(interest, p.rt); err != nil {
			p.node.Log().Debug("data interest unanswered", "err", err)
		}
	}); err != nil {
		p.node.Log().Warn("failed to register data prefix", "err", err)
	}
}

func scheduleNextChunk(p *peer, chunker *demodata.Chunker) {
	chunk, ok := chunker.Next()
	if !ok {
		p.node.Log().Info("all article data published")
		return
	}

	meta := wire.MetaInfo{ContentType: protocol.ContentTypeBlob, FreshnessPeriodMS: -1}
	data, err := p.node.Publish(meta, chunk)
	if err != nil {
		p.node.Log().Warn("publish failed", "err", err)
	} else {
		p.node.Log().Info("published", "round", p.node.Round(), "seq", p.node.SelfSeq(), "bytes", len(data))
	}

	interval := time.Duration(p.node.PublishIntervalMS()) * time.Millisecond
	_ = p.rt.Schedule(interval, func() {
		scheduleNextChunk(p, chunker)
	})
}
