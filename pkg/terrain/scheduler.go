package terrain

import (
	"sync"

	"github.com/alitto/pond/v2"
)

// scheduler runs region jobs on a fixed pool of workers. Jobs are submitted
// in groups of batchSize; a group is fully drained before the next one is
// submitted.
type scheduler struct {
	pool      pond.Pool
	batchSize int
}

func newScheduler(workers, batchSize int) *scheduler {
	return &scheduler{
		pool:      pond.NewPool(workers),
		batchSize: batchSize,
	}
}

// run calls task for every index in [0, n) and closes done once all calls
// returned. It does not block.
func (s *scheduler) run(n int, task func(i int), done chan<- struct{}) {
	go func() {
		defer close(done)

		for start := 0; start < n; start += s.batchSize {
			end := min(start+s.batchSize, n)

			var wg sync.WaitGroup
			for i := start; i < end; i++ {
				wg.Add(1)
				s.pool.Submit(func() {
					defer wg.Done()
					task(i)
				})
			}
			wg.Wait()
		}
	}()
}

func (s *scheduler) stop() {
	s.pool.StopAndWait()
}
