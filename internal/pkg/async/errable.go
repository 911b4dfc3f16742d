package async

// Errable runs fn in its own goroutine and exposes its error through the
// returned channel. The channel is closed after the single send.
func Errable(fn func() error) <-chan error {
	ch := make(chan error)
	go func() {
		ch <- fn()
		close(ch)
	}()
	return ch
}
