package browser

import (
	"io"
	"log"

	sysbrowser "github.com/pkg/browser"
)

// Opener hands URLs to the operating system's default browser. Launch
// failures are logged and otherwise ignored.
type Opener struct {
	open func(url string) error
	done func()
}

// New returns an Opener backed by the system browser.
func New() *Opener {
	sysbrowser.Stdout = io.Discard
	sysbrowser.Stderr = io.Discard
	return &Opener{open: sysbrowser.OpenURL}
}

// Open launches url without waiting for the browser to start.
func (o *Opener) Open(url string) {
	go func() {
		if err := o.open(url); err != nil {
			log.Printf("open %s: %v", url, err)
		}
		if o.done != nil {
			o.done()
		}
	}()
}
