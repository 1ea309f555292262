//go:build tinygo && baremetal

package hal

import (
	"machine"
	"sync"
	"time"
)

// tinyGoClock reads the runtime clock. Boards without an RTC start at the epoch.
type tinyGoClock struct{}

func (tinyGoClock) Now() time.Time { return time.Now() }

// uartLogger writes CRLF-terminated lines. The feed, ingest and display tasks
// log concurrently, so whole lines are serialised.
type uartLogger struct {
	mu   sync.Mutex
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.crlf()
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.uart.Write(b)
	l.crlf()
}

func (l *uartLogger) crlf() {
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
