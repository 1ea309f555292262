//go:build tinygo && baremetal

package hal

import "machine"

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
}

// New returns a bare-metal HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. The framebuffer lives in RAM
// until a panel driver is attached.
func New(opts Options) HAL {
	opts = opts.withDefaults()
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newMemFramebuffer(opts.Width, opts.Height, nil),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Clock() Clock     { return tinyGoClock{} }
