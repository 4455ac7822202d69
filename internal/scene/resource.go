package scene

import "errors"

// ErrAlreadyDisposed is never returned by Dispose; it is exposed for
// renderers that refuse to draw released resources.
var ErrAlreadyDisposed = errors.New("resource already disposed")

// Resource is a graphics object that must be released at session teardown.
type Resource interface {
	Dispose() error
	Disposed() bool
}

type disposable struct {
	disposed bool
}

// Dispose marks the resource released. It is idempotent.
func (d *disposable) Dispose() error {
	d.disposed = true
	return nil
}

// Disposed reports whether Dispose has been called.
func (d *disposable) Disposed() bool { return d.disposed }
