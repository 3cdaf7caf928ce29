package simulation

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shift/shiftgame/engine"
)

// gameJob is one queued game: its own seed, queued up front so results
// are reproducible regardless of how many workers race to pop jobs.
type gameJob struct {
	simID int
	seed  uint64
}

// RunBatchParallel plays numGames games across runtime.NumCPU() workers.
// Grounded on the teacher's worker-pool shape (buffered jobs/results
// channels, one goroutine per worker, a closer goroutine draining the
// WaitGroup) with the teacher's package-level GOMAXPROCS mutation
// dropped — numWorkers bounds this call's own goroutine count instead of
// reaching into global runtime state a concurrent caller might also be
// using.
func RunBatchParallel(registry *engine.Registry, p0, p1 AgentFactory, numGames int, seed uint64, maxTurns int) []GameRecord {
	return RunBatchParallelN(registry, p0, p1, numGames, seed, maxTurns, runtime.NumCPU())
}

// RunBatchParallelN is RunBatchParallel with an explicit worker count.
func RunBatchParallelN(registry *engine.Registry, p0, p1 AgentFactory, numGames int, seed uint64, maxTurns int, numWorkers int) []GameRecord {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	jobs := make(chan gameJob, numGames)
	results := make(chan GameRecord, numGames)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(&wg, jobs, results, registry, p0, p1, maxTurns)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < numGames; i++ {
		jobs <- gameJob{simID: i, seed: rng.Uint64()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]GameRecord, 0, numGames)
	for rec := range results {
		if rec.Error != "" {
			logrus.WithField("seed", rec.Seed).WithError(errors.New(rec.Error)).Warn("game ended with error")
		}
		records = append(records, rec)
	}
	return records
}

func worker(wg *sync.WaitGroup, jobs <-chan gameJob, results chan<- GameRecord, registry *engine.Registry, p0, p1 AgentFactory, maxTurns int) {
	defer wg.Done()
	for job := range jobs {
		results <- RunSingleGame(registry, p0, p1, job.seed, maxTurns)
	}
}
