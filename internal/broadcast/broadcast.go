package broadcast

import (
	"context"
	"fmt"
	"sync"
)

// Result summarizes one broadcast fan-out.
type Result struct {
	Acked  int
	Failed int
	Peers  int
	Errors []error
}

// SendFunc performs one send to a single peer. The call either completes,
// which counts as that peer's acknowledgement, or fails.
type SendFunc func(ctx context.Context, peer int) error

// AckFunc is invoked once for every peer whose send completed.
type AckFunc func(peer int)

// Do fans a send out to every peer as independent concurrent calls and waits
// for all of them to finish. A failure against one peer never aborts the
// sends to the others; it is recorded in the result and the peer's
// acknowledgement is simply withheld. Do imposes no deadline of its own.
func Do(ctx context.Context, peers []int, send SendFunc, onAck AckFunc) Result {
	var (
		mu     sync.Mutex
		acked  int
		errors []error
		wg     sync.WaitGroup
	)

	for _, peer := range peers {
		wg.Add(1)
		go func(peer int) {
			defer wg.Done()

			err := send(ctx, peer)

			mu.Lock()
			if err != nil {
				errors = append(errors, fmt.Errorf("peer %d: %w", peer, err))
			} else {
				acked++
			}
			mu.Unlock()

			if err == nil && onAck != nil {
				onAck(peer)
			}
		}(peer)
	}

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	return Result{
		Acked:  acked,
		Failed: len(errors),
		Peers:  len(peers),
		Errors: errors,
	}
}

// Go runs Do in the background and discards the result. Used for
// fire-and-forget broadcasts where no acknowledgement is awaited.
func Go(ctx context.Context, peers []int, send SendFunc) {
	go Do(ctx, peers, send, nil)
}
