package transport_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/console-core/internal/transport"
	"github.com/bbernstein/console-core/pkg/artnet"
	"github.com/bbernstein/console-core/pkg/dmx"
)

func listenOnFreePort(t *testing.T) (*net.UDPConn, int) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	return conn, conn.LocalAddr().(*net.UDPAddr).Port
}

func TestArtNetSenderTransmitsOnPublish(t *testing.T) {
	listener, port := listenOnFreePort(t)
	defer listener.Close()

	sender := transport.NewArtNetSender(transport.Config{
		Enabled:          true,
		BroadcastAddr:    "127.0.0.1",
		Port:             port,
		IdleRateHz:       1,
		HighRateHz:       200,
		HighRateDuration: 50 * time.Millisecond,
	})
	require.NoError(t, sender.Start())
	defer sender.Stop()

	mv := dmx.NewMultiverse()
	mv.Set(dmx.Address{Universe: 1, Channel: 1}, 255)
	sender.Publish(mv)

	buf := make([]byte, artnet.PacketSize+16)
	require.NoError(t, listener.SetReadDeadline(time.Now().Add(time.Second)))
	n, err := listener.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, int(artnet.PacketSize), n)
	assert.Equal(t, byte(255), buf[18])
}

func TestArtNetSenderDisabledDoesNothing(t *testing.T) {
	sender := transport.NewArtNetSender(transport.Config{Enabled: false})
	require.NoError(t, sender.Start())
	sender.Publish(dmx.NewMultiverse())
	sender.Stop() // must not panic with no open socket
}
