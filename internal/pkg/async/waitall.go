package async

import "sync"

// WaitAll waits for all the given errables to finish, and returns
// the first error observed across all of them, if any.
func WaitAll(chans ...<-chan error) error {
	var wg sync.WaitGroup
	wg.Add(len(chans))

	var mu sync.Mutex
	var firstErr error
	for _, ch := range chans {
		go func(ch <-chan error) {
			defer wg.Done()
			if err, open := <-ch; open && err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(ch)
	}

	wg.Wait()
	return firstErr
}
