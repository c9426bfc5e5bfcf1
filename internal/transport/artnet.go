// Package transport sends a resolved show to the physical world over
// Art-Net, at an adaptive rate: a fast rate immediately after a change,
// decaying to a slow idle rate once output has been stable for a while
// (§4.11).
package transport

import (
	"log"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/bbernstein/console-core/pkg/artnet"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Config controls an ArtNetSender's network target and timing.
type Config struct {
	Enabled          bool
	BroadcastAddr    string
	Port             int
	IdleRateHz       float64
	HighRateHz       float64
	HighRateDuration time.Duration
}

// DefaultConfig returns the timing the teacher shipped: a fast 40Hz
// burst for two seconds after any change, decaying to 1Hz while idle.
func DefaultConfig() Config {
	return Config{
		Enabled:          true,
		BroadcastAddr:    "255.255.255.255",
		Port:             artnet.DefaultPort,
		IdleRateHz:       1,
		HighRateHz:       40,
		HighRateDuration: 2 * time.Second,
	}
}

// ArtNetSender owns a UDP socket and a transmit loop that samples the
// most recently published multiverse snapshot on each tick and sends
// one Art-Net DMX packet for each universe whose values differ from
// the last packet sent for it. A universe identical to its last-sent
// state is not resent, so once output is stable ticks send nothing.
type ArtNetSender struct {
	mu sync.Mutex

	cfg  Config
	conn *net.UDPConn
	addr *net.UDPAddr

	latest       *dmx.Multiverse
	lastSent     map[dmx.UniverseId][dmx.ChannelsPerUniverse]dmx.Value
	dirty        bool
	lastChangeAt time.Time
	highRate     bool
	sequence     byte

	resetTicker chan struct{}
	stop        chan struct{}
	running     bool
}

// NewArtNetSender constructs a sender; call Start to open the socket
// and begin transmitting.
func NewArtNetSender(cfg Config) *ArtNetSender {
	return &ArtNetSender{
		cfg:         cfg,
		lastSent:    make(map[dmx.UniverseId][dmx.ChannelsPerUniverse]dmx.Value),
		resetTicker: make(chan struct{}, 1),
		stop:        make(chan struct{}),
	}
}

// Start opens the broadcast socket and launches the transmit loop. A
// disabled sender is a harmless no-op so callers need not branch on
// Config.Enabled at every call site.
func (a *ArtNetSender) Start() error {
	if !a.cfg.Enabled {
		return nil
	}
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(a.cfg.BroadcastAddr, strconv.Itoa(a.cfg.Port)))
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.conn = conn
	a.addr = addr
	a.running = true
	a.mu.Unlock()

	go a.transmitLoop()
	return nil
}

// Publish hands the sender the most recent resolved frame. It marks
// the sender dirty and triggers an immediate high-rate burst; the
// transmit loop does the actual diffing and sending.
func (a *ArtNetSender) Publish(mv *dmx.Multiverse) {
	a.mu.Lock()
	a.latest = mv
	a.dirty = true
	a.lastChangeAt = time.Now()
	a.highRate = true
	a.mu.Unlock()

	select {
	case a.resetTicker <- struct{}{}:
	default:
	}
}

func (a *ArtNetSender) transmitLoop() {
	rate := a.cfg.IdleRateHz
	if rate <= 0 {
		rate = 1
	}
	ticker := time.NewTicker(rateInterval(rate))
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-a.resetTicker:
			ticker.Reset(rateInterval(a.cfg.HighRateHz))
		case <-ticker.C:
			a.transmit()
			if a.decayRate() {
				ticker.Reset(rateInterval(a.cfg.IdleRateHz))
			}
		}
	}
}

// decayRate drops back to the idle rate once HighRateDuration has
// elapsed since the last change, reporting whether a transition just
// occurred.
func (a *ArtNetSender) decayRate() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.highRate && time.Since(a.lastChangeAt) >= a.cfg.HighRateDuration {
		a.highRate = false
		return true
	}
	return false
}

func (a *ArtNetSender) transmit() {
	a.mu.Lock()
	mv := a.latest
	conn := a.conn
	a.mu.Unlock()
	if mv == nil || conn == nil {
		return
	}

	for id, u := range mv.Universes() {
		values := u.Values()
		a.mu.Lock()
		prev, seen := a.lastSent[id]
		unchanged := seen && prev == values
		a.mu.Unlock()
		if unchanged {
			continue
		}

		channels := make([]byte, dmx.ChannelsPerUniverse)
		for i, v := range values {
			channels[i] = byte(v)
		}
		a.mu.Lock()
		a.sequence++
		seq := a.sequence
		a.lastSent[id] = values
		a.mu.Unlock()

		packet := artnet.BuildDMXPacket(int(id), channels, seq)
		if _, err := conn.Write(packet); err != nil {
			log.Printf("transport: art-net write to %s failed: %v", a.addr, err)
		}
	}
}

// Stop sends a final all-zero blackout on every universe last known to
// be lit, then closes the socket.
func (a *ArtNetSender) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	conn := a.conn
	lastSent := a.lastSent
	a.mu.Unlock()

	close(a.stop)

	if conn == nil {
		return
	}
	blank := make([]byte, dmx.ChannelsPerUniverse)
	seq := byte(0)
	for id := range lastSent {
		seq++
		_, _ = conn.Write(artnet.BuildDMXPacket(int(id), blank, seq))
	}
	_ = conn.Close()
}

// ReloadBroadcastAddress swaps the destination address of a running
// sender without a full restart, used when an operator changes the
// broadcast target at runtime.
func (a *ArtNetSender) ReloadBroadcastAddress(newAddress string) error {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(newAddress, strconv.Itoa(a.cfg.Port)))
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return err
	}

	a.mu.Lock()
	old := a.conn
	a.conn = conn
	a.addr = addr
	a.cfg.BroadcastAddr = newAddress
	a.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

func rateInterval(hz float64) time.Duration {
	if hz <= 0 {
		hz = 1
	}
	return time.Duration(float64(time.Second) / hz)
}
