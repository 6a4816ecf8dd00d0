package device

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal register offsets within its mapped page, 6551-ACIA-style: one
// data register and one status register sharing a page.
const (
	TerminalData   uint16 = 0x00
	TerminalStatus uint16 = 0x01

	statusInputReady byte = 1 << 0
	statusOutputBusy byte = 1 << 1 // always clear: writes never block
)

// Terminal is a byte-queued console peripheral: reads from
// TerminalData pull the next queued input byte (0x00 if none is queued,
// with the status register's input-ready bit reflecting availability);
// writes to TerminalData enqueue a byte for output. Read/Write never
// touch a real terminal directly, so a Terminal is always safe to
// construct and drive in a test. Host.Start, called separately, wires a
// real tty in and is never exercised by the core's own tests.
type Terminal struct {
	mu  sync.Mutex
	in  []byte
	out []byte
}

// NewTerminal returns an idle Terminal with empty input and output
// queues.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Read implements m6502.Device. TerminalData pops the oldest queued input
// byte (0x00 if the queue is empty); TerminalStatus reports whether input
// is available. Any other offset on the page reads 0x00.
func (t *Terminal) Read(addr uint16) byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch addr & 0xFF {
	case TerminalData:
		if len(t.in) == 0 {
			return 0x00
		}
		b := t.in[0]
		t.in = t.in[1:]
		return b
	case TerminalStatus:
		if len(t.in) > 0 {
			return statusInputReady
		}
		return 0x00
	}
	return 0x00
}

// Write implements m6502.Device. TerminalData enqueues b for output;
// every other offset is ignored.
func (t *Terminal) Write(addr uint16, b byte) {
	if addr&0xFF != TerminalData {
		return
	}
	t.mu.Lock()
	t.out = append(t.out, b)
	t.mu.Unlock()
}

// Feed appends bytes to the input queue, as if they had arrived from a
// host keyboard.
func (t *Terminal) Feed(bytes []byte) {
	t.mu.Lock()
	t.in = append(t.in, bytes...)
	t.mu.Unlock()
}

// DrainOutput removes and returns every byte written so far.
func (t *Terminal) DrainOutput() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.out
	t.out = nil
	return out
}

// Host pumps bytes between a real terminal and a Terminal device. It is
// the interactive counterpart to IntuitionEngine's TerminalHost: Start
// puts stdin in raw mode and forwards bytes into the device's input
// queue; Stop restores the terminal. A Host is only ever constructed by
// an interactive caller — the core and its tests never touch it.
type Host struct {
	dev   *Terminal
	in    *os.File
	out   io.Writer
	state *term.State
	fd    int

	stopCh chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewHost returns a Host that pumps os.Stdin/os.Stdout into dev.
func NewHost(dev *Terminal) *Host {
	return &Host{
		dev:    dev,
		in:     os.Stdin,
		out:    os.Stdout,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts the host terminal into raw mode and begins forwarding stdin
// bytes into dev's input queue on a background goroutine. Returns an
// error if stdin is not a terminal or raw mode could not be set; the
// caller may still drive dev.Feed manually in that case.
func (h *Host) Start() error {
	h.fd = int(h.in.Fd())
	state, err := term.MakeRaw(h.fd)
	if err != nil {
		return err
	}
	h.state = state

	go func() {
		defer close(h.done)
		r := bufio.NewReader(h.in)
		for {
			select {
			case <-h.stopCh:
				return
			default:
			}
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			if b == '\r' {
				b = '\n'
			}
			h.dev.Feed([]byte{b})
		}
	}()
	return nil
}

// Stop terminates the forwarding goroutine and restores the terminal to
// its prior state.
func (h *Host) Stop() {
	h.once.Do(func() { close(h.stopCh) })
	<-h.done
	if h.state != nil {
		_ = term.Restore(h.fd, h.state)
		h.state = nil
	}
}

// Flush writes every byte dev has queued for output to the host's writer.
func (h *Host) Flush() {
	if out := h.dev.DrainOutput(); len(out) > 0 {
		_, _ = h.out.Write(out)
	}
}
