// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package command

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/DataDog/trace-storage/comp/trace"
	configcomp "github.com/DataDog/trace-storage/comp/trace/config"
	storagecomp "github.com/DataDog/trace-storage/comp/trace/storage"
	"github.com/DataDog/trace-storage/pkg/trace/config"
	"github.com/DataDog/trace-storage/pkg/trace/info"
	"github.com/DataDog/trace-storage/pkg/trace/model"
	"github.com/DataDog/trace-storage/pkg/trace/storage"
	"github.com/DataDog/trace-storage/pkg/trace/writer"
)

func run(ctx context.Context, out io.Writer, globalParams *GlobalParams, params *runParams) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		cfg     *config.AgentConfig
		factory *storage.Factory
		stats   *info.StorageStats
		qw      *writer.QueuedSender
	)
	app := fx.New(
		fx.NopLogger,
		fx.Supply(configcomp.Params{ConfFilePath: globalParams.ConfigFilePath}),
		fx.Supply(storagecomp.Params{}),
		trace.Bundle(),
		fx.Populate(&cfg, &factory, &stats, &qw),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "unable to build the storage components")
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	var client statsd.ClientInterface = &statsd.NoOpClient{}
	tags := []string{"agent_id:" + cfg.AgentID}
	totals := newTotals()
	publishDone := make(chan struct{})
	if params.statsd {
		c, err := statsd.New(cfg.StatsdAddr())
		if err != nil {
			_ = app.Stop(context.Background())
			return errors.Wrapf(err, "unable to create statsd client for %s", cfg.StatsdAddr())
		}
		client = c
		go func() {
			defer close(publishDone)
			publishLoop(ctx, client, stats, tags, totals, cfg.StatsInterval)
		}()
	} else {
		close(publishDone)
	}
	defer client.Close()

	start := time.Now()
	d := simulate(ctx, factory, cfg.Storage.ElapsedThreshold, params)
	elapsed := time.Since(start)

	if err := app.Stop(context.Background()); err != nil {
		return err
	}
	cancel()
	<-publishDone
	totals.add(stats.Publish(client, tags))
	snap := totals.snapshot()

	fmt.Fprintf(out, "simulated %d traces in %s (policy: %s)\n", params.traces, elapsed.Round(time.Millisecond), factory.Policy())
	printSnapshot(out, snap)
	fmt.Fprintf(out, "%-18s %d\n", "writer_sent", qw.Sent())
	fmt.Fprintf(out, "%-18s %d\n", "writer_dropped", qw.Dropped())
	for _, q := range []float64{0.5, 0.99} {
		if v, err := d.quantile(q); err == nil {
			fmt.Fprintf(out, "%-18s %.1fms\n", fmt.Sprintf("span_duration_p%d", int(q*100)), v)
		}
	}
	return nil
}

// publishLoop reports the stats every interval until ctx is done. Each
// publication resets the stats, so the published counts are summed in sums.
func publishLoop(ctx context.Context, client statsd.ClientInterface, stats *info.StorageStats, tags []string, sums *totals, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sums.add(stats.Publish(client, tags))
		case <-ctx.Done():
			return
		}
	}
}

// totals sums the counts published over a run.
type totals struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newTotals() *totals {
	return &totals{counts: make(map[string]int64)}
}

func (t *totals) add(counts map[string]int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range counts {
		t.counts[k] += v
	}
}

func (t *totals) snapshot() map[string]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := make(map[string]int64, len(t.counts))
	for k, v := range t.counts {
		snap[k] = v
	}
	return snap
}

// simulate runs params.traces traces, params.concurrency at a time, and
// returns the distribution of their durations in milliseconds. The span
// events of each trace are stored by params.workers goroutines.
func simulate(ctx context.Context, factory *storage.Factory, threshold time.Duration, params *runParams) *durations {
	d := newDurations()
	g := new(errgroup.Group)
	if params.concurrency > 0 {
		g.SetLimit(params.concurrency)
	}
	for i := 0; i < params.traces; i++ {
		if ctx.Err() != nil {
			break
		}
		slow := params.slowEvery > 0 && i%params.slowEvery == 0
		g.Go(func() error {
			d.add(simulateTrace(ctx, factory.NewStorage(), slow, threshold, params))
			return nil
		})
	}
	_ = g.Wait()
	return d
}

func simulateTrace(ctx context.Context, s storage.Storage, slow bool, threshold time.Duration, params *runParams) time.Duration {
	traceID := rand.Uint64()
	span := &model.Span{
		TraceID:  traceID,
		SpanID:   traceID,
		Service:  "trace-storage-sim",
		Name:     "sim.request",
		Resource: "GET /simulated",
		Start:    time.Now(),
	}
	var (
		wg  sync.WaitGroup
		seq = atomic.NewInt32(0)
	)
	workers := params.workers
	if workers <= 0 {
		workers = 1
	}
	perWorker := params.events / workers
	for w := 0; w < workers; w++ {
		n := perWorker
		if w == 0 {
			n += params.events % workers
		}
		wg.Add(1)
		go func(depth int32, n int) {
			defer wg.Done()
			for j := 0; j < n; j++ {
				// slow traces outlive the threshold halfway through
				if slow && j == n/2 {
					sleep(ctx, threshold+time.Millisecond)
				}
				sleep(ctx, params.eventDelay)
				start := time.Since(span.Start)
				s.StoreEvent(&model.SpanEvent{
					Span:         span,
					Sequence:     seq.Inc() - 1,
					Depth:        depth,
					Name:         "sim.operation",
					StartElapsed: start,
					EndElapsed:   time.Since(span.Start),
				})
			}
		}(int32(w+1), n)
	}
	wg.Wait()
	span.Duration = time.Since(span.Start)
	s.StoreSpan(span)
	return span.Duration
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func printSnapshot(out io.Writer, snap map[string]int64) {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%-18s %d\n", k, snap[k])
	}
}

// durations is a goroutine safe sketch of span durations in milliseconds.
type durations struct {
	mu     sync.Mutex
	sketch *ddsketch.DDSketch
}

func newDurations() *durations {
	// 1% relative accuracy never fails to build
	sketch, _ := ddsketch.NewDefaultDDSketch(0.01)
	return &durations{sketch: sketch}
}

func (d *durations) add(v time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_ = d.sketch.Add(float64(v) / float64(time.Millisecond))
}

func (d *durations) quantile(q float64) (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sketch.GetValueAtQuantile(q)
}
