package receiver

import (
	"bytes"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
)

// Logger is the slice of the application logger the receivers need.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Receiver is a source of decoded telemetry envelopes. Three variants
// exist: UDP (development), serial/RS485 (production) and the demo
// generator. Each runs its decode loop on its own goroutine; Stop halts
// it within a bounded wait.
//
// Decoded envelopes are delivered on two paths fed from the same decode
// step: an optional push callback and an internal queue drained with
// Poll. The render loop uses Poll exclusively, so state mutation stays
// confined to a single goroutine.
type Receiver interface {
	Start() error
	Stop()
	SetMessageCallback(func(state.Envelope))
	Poll() (state.Envelope, bool)
}

const queueDepth = 1024

// delivery is the decode-and-deliver plumbing shared by all variants.
type delivery struct {
	tag      string
	log      Logger
	queue    chan state.Envelope
	callback func(state.Envelope)
}

func newDelivery(tag string, log Logger) delivery {
	return delivery{tag: tag, log: log, queue: make(chan state.Envelope, queueDepth)}
}

func (d *delivery) SetMessageCallback(cb func(state.Envelope)) { d.callback = cb }

// Poll removes one queued envelope without blocking.
func (d *delivery) Poll() (state.Envelope, bool) {
	select {
	case env := <-d.queue:
		return env, true
	default:
		return state.Envelope{}, false
	}
}

// handleLine decodes one NDJSON line. Malformed lines are logged and
// dropped; envelopes addressed to another device are dropped silently.
func (d *delivery) handleLine(line []byte) {
	env, err := state.DecodeLine(line)
	if err != nil {
		d.log.Warnf(d.tag, "dropping line: %v", err)
		return
	}
	if env.ID != state.DeviceID {
		return
	}
	d.deliver(env)
}

func (d *delivery) deliver(env state.Envelope) {
	select {
	case d.queue <- env:
	default:
		// Consumer has stalled; shed the oldest message so fresh
		// telemetry keeps flowing.
		select {
		case <-d.queue:
		default:
		}
		select {
		case d.queue <- env:
		default:
		}
	}
	if d.callback != nil {
		d.callback(env)
	}
}

// lineBuffer reassembles newline-framed records from fragmented reads.
type lineBuffer struct {
	buf []byte
}

// feed appends raw bytes and emits every complete line, with the
// terminating newline and any carriage return stripped. Blank lines are
// skipped.
func (b *lineBuffer) feed(data []byte, emit func(line []byte)) {
	b.buf = append(b.buf, data...)
	for {
		i := bytes.IndexByte(b.buf, '\n')
		if i < 0 {
			return
		}
		line := bytes.TrimSpace(b.buf[:i])
		b.buf = append(b.buf[:0:0], b.buf[i+1:]...)
		if len(line) > 0 {
			emit(line)
		}
	}
}
