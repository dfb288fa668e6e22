package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/usecase"
)

// Poller runs the periodic sync cycle over all requestable channels
type Poller struct {
	driver   *usecase.SyncDriver
	monitor  *usecase.ViewportMonitor
	registry *domain.Registry
	prefs    repo.PrefsRepo
	viewport func() domain.Bounds

	pollInterval time.Duration
	running      bool
	stopCh       chan struct{}
	wg           sync.WaitGroup
}

// NewPoller creates a new poller
func NewPoller(
	driver *usecase.SyncDriver,
	monitor *usecase.ViewportMonitor,
	registry *domain.Registry,
	prefs repo.PrefsRepo,
	viewport func() domain.Bounds,
	pollInterval time.Duration,
) *Poller {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &Poller{
		driver:       driver,
		monitor:      monitor,
		registry:     registry,
		prefs:        prefs,
		viewport:     viewport,
		pollInterval: pollInterval,
		stopCh:       make(chan struct{}),
	}
}

// Start starts the poller
func (p *Poller) Start() {
	if p.running {
		return
	}
	p.running = true
	p.wg.Add(1)
	go p.loop()
	fmt.Printf("[Poller] Started with poll interval %v\n", p.pollInterval)
}

// Stop stops the poller
func (p *Poller) Stop() {
	if !p.running {
		return
	}
	p.running = false
	close(p.stopCh)
	p.wg.Wait()
	fmt.Println("[Poller] Stopped")
}

func (p *Poller) loop() {
	defer p.wg.Done()

	// Initial run
	p.runCycle()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.runCycle()
		case <-p.stopCh:
			return
		}
	}
}

// runCycle checks the viewport and syncs every requestable channel. A
// failure in one channel never blocks the others.
func (p *Poller) runCycle() {
	ctx := context.Background()

	bounds := p.viewport()
	if p.monitor.Check(bounds) {
		if err := p.prefs.SaveViewport(ctx, bounds); err != nil {
			fmt.Printf("[Poller] Failed to persist viewport: %v\n", err)
		}
	}

	for _, ch := range p.registry.All() {
		if !ch.CanRequest {
			continue
		}
		err := p.driver.RequestChannel(ctx, ch.ID, false, false)
		if errors.Is(err, usecase.ErrClientIdle) {
			// Nothing to do while the host is idle; poll again later.
			return
		}
		if err != nil {
			fmt.Printf("[Poller] Sync error for channel %s: %v\n", ch.ID, err)
		}
	}
}
