package receiver

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.bug.st/serial"
)

// Serial reads NDJSON telemetry from the RS485 bus via a serial port.
// Production transport. Failing to open the device is fatal at startup;
// read errors once running are logged and the loop continues.
type Serial struct {
	delivery
	device  string
	baud    int
	port    serial.Port
	running atomic.Bool
	done    chan struct{}
}

func NewSerial(device string, baud int, log Logger) *Serial {
	return &Serial{delivery: newDelivery("serial", log), device: device, baud: baud}
}

func (s *Serial) Start() error {
	mode := &serial.Mode{
		BaudRate: s.baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(s.device, mode)
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", s.device, err)
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return fmt.Errorf("set read timeout on %s: %w", s.device, err)
	}
	s.port = port
	s.done = make(chan struct{})
	s.running.Store(true)
	go s.loop()
	s.log.Infof("serial", "reading %s @ %d baud", s.device, s.baud)
	return nil
}

func (s *Serial) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	select {
	case <-s.done:
	case <-time.After(joinTimeout):
		s.log.Errorf("serial", "receive loop did not stop within %v", joinTimeout)
	}
	_ = s.port.Close()
	s.log.Infof("serial", "stopped")
}

func (s *Serial) loop() {
	defer close(s.done)
	var lb lineBuffer
	buf := make([]byte, 4096)
	for s.running.Load() {
		n, err := s.port.Read(buf)
		if err != nil {
			if s.running.Load() {
				s.log.Errorf("serial", "read error: %v", err)
			}
			continue
		}
		if n == 0 {
			// Read timeout; lets Stop be observed promptly.
			continue
		}
		lb.feed(buf[:n], s.handleLine)
	}
}
