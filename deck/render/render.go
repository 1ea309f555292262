// Package render pushes render-ready text from the core to a display layer.
//
// The display layer implements Sink and receives only preformatted text. Every push
// happens under the display lock supplied by the display driver, held only for the
// duration of the sink calls.
package render

import (
	"sync"

	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
	"taskdeck/deck/timefmt"
)

// Sink is implemented by a display layer. Calls are made with the display lock held.
type Sink interface {
	UpdateVisible(slots []taskstore.Record)
	UpdateClock(t text.Text)
	UpdateCount(n int)
}

// Locale holds the literals shown in place of missing data.
type Locale struct {
	Untitled string
	Empty    string
}

// DefaultLocale is the Chinese UI text of the device.
var DefaultLocale = Locale{
	Untitled: "无标题",
	Empty:    "暂无任务",
}

// Presenter serialises pushes into a Sink.
type Presenter struct {
	lock     sync.Locker
	sink     Sink
	locale   Locale
	due      timefmt.Layout
	lastSeq  uint64
	anyFrame bool
	slots    [scroll.VisibleSlots]taskstore.Record
}

// NewPresenter returns a presenter guarding sink with lock. due supplies the sentinel
// shown under the empty-list placeholder.
func NewPresenter(lock sync.Locker, sink Sink, locale Locale, due timefmt.Layout) *Presenter {
	return &Presenter{lock: lock, sink: sink, locale: locale, due: due}
}

// Frame pushes a window frame. Frames older than the last one pushed are dropped.
// It reports whether the sink was updated.
func (p *Presenter) Frame(f scroll.Frame) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.anyFrame && f.Seq < p.lastSeq {
		return false
	}
	p.anyFrame = true
	p.lastSeq = f.Seq

	p.slots = f.Slots
	if f.Count == 0 {
		p.slots[0] = taskstore.Record{
			Summary: text.New(p.locale.Empty, taskstore.SummaryBytes),
			Due:     text.New(p.due.Sentinel, taskstore.DueBytes),
			Valid:   true,
		}
	}

	p.sink.UpdateCount(f.Count)
	p.sink.UpdateVisible(p.slots[:])
	return true
}

// Clock pushes the clock label.
func (p *Presenter) Clock(t text.Text) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.sink.UpdateClock(t)
}
