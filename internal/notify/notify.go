// Package notify shows transient messages: in-window banners and desktop
// notifications.
package notify

import (
	"log"
	"time"

	"github.com/ncruces/zenity"
)

type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Color is the banner background for k.
func (k Kind) Color() string {
	switch k {
	case Success:
		return "#10b981"
	case Warning:
		return "#f59e0b"
	case Error:
		return "#ef4444"
	default:
		return "#3b82f6"
	}
}

// Notifier delivers a message to the user.
type Notifier interface {
	Notify(msg string, kind Kind)
}

// Desktop sends messages through the OS notification area.
type Desktop struct {
	Title string
	// send is replaced in tests.
	send func(msg string, opts ...zenity.Option) error
}

func NewDesktop(title string) *Desktop {
	return &Desktop{Title: title, send: zenity.Notify}
}

// Notify posts msg without blocking the caller. Failures are logged only.
func (d *Desktop) Notify(msg string, kind Kind) {
	opts := []zenity.Option{zenity.Title(d.Title), icon(kind)}
	go func() {
		if err := d.send(msg, opts...); err != nil {
			log.Printf("notify: desktop %s notification failed: %v", kind, err)
		}
	}()
}

func icon(k Kind) zenity.Option {
	switch k {
	case Warning:
		return zenity.WarningIcon
	case Error:
		return zenity.ErrorIcon
	default:
		return zenity.InfoIcon
	}
}

// Fanout delivers to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(msg string, kind Kind) {
	for _, n := range f {
		n.Notify(msg, kind)
	}
}

// clock is swapped in tests.
var clock = time.Now
