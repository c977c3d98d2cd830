// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepInterval controls how often idle peers are evicted from the guard.
const sweepInterval = 10 * time.Minute

type peerEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// peerRateGuard throttles inbound datagrams per peer address before they
// reach the codec. Each peer gets its own token bucket; idle peers are
// swept periodically so the map cannot grow without bound.
type peerRateGuard struct {
	mu    sync.Mutex
	peers map[string]*peerEntry
	rps   rate.Limit
	burst int
}

func newPeerRateGuard(rps float64, burst int) *peerRateGuard {
	g := &peerRateGuard{
		peers: make(map[string]*peerEntry),
		rps:   rate.Limit(rps),
		burst: burst,
	}
	go g.sweep()
	return g
}

// allow reports whether a datagram from peer may be processed now.
func (g *peerRateGuard) allow(peer string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.peers[peer]
	if !ok {
		e = &peerEntry{limiter: rate.NewLimiter(g.rps, g.burst)}
		g.peers[peer] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

func (g *peerRateGuard) sweep() {
	for {
		time.Sleep(sweepInterval)
		g.mu.Lock()
		for peer, e := range g.peers {
			if time.Since(e.lastSeen) > sweepInterval {
				delete(g.peers, peer)
			}
		}
		g.mu.Unlock()
	}
}
