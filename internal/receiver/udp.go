package receiver

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

const (
	readTimeout = 100 * time.Millisecond
	joinTimeout = time.Second
)

// UDP listens on a UDP port for NDJSON telemetry. Development transport;
// the host broadcasts the same lines it writes to the RS485 bus.
type UDP struct {
	delivery
	port    int
	conn    *net.UDPConn
	running atomic.Bool
	done    chan struct{}
}

func NewUDP(port int, log Logger) *UDP {
	return &UDP{delivery: newDelivery("udp", log), port: port}
}

func (u *UDP) Start() error {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: u.port})
	if err != nil {
		return fmt.Errorf("udp listen on :%d: %w", u.port, err)
	}
	u.conn = conn
	u.done = make(chan struct{})
	u.running.Store(true)
	go u.loop()
	u.log.Infof("udp", "listening on :%d", u.port)
	return nil
}

// LocalAddr returns the bound address, useful when the port was 0.
func (u *UDP) LocalAddr() net.Addr {
	if u.conn == nil {
		return nil
	}
	return u.conn.LocalAddr()
}

// Stop halts the receive loop. The short read deadline wakes the blocked
// read; failure to join within the bound is logged, not escalated.
func (u *UDP) Stop() {
	if !u.running.CompareAndSwap(true, false) {
		return
	}
	select {
	case <-u.done:
	case <-time.After(joinTimeout):
		u.log.Errorf("udp", "receive loop did not stop within %v", joinTimeout)
	}
	_ = u.conn.Close()
	u.log.Infof("udp", "stopped")
}

func (u *UDP) loop() {
	defer close(u.done)
	var lb lineBuffer
	buf := make([]byte, 4096)
	for u.running.Load() {
		_ = u.conn.SetReadDeadline(time.Now().Add(readTimeout))
		n, _, err := u.conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if u.running.Load() {
				u.log.Errorf("udp", "receive error: %v", err)
			}
			continue
		}
		lb.feed(buf[:n], u.handleLine)
	}
}
