package out

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	mirrorout "tokenhub/internal/modules/mirror/port/out"
)

// WorkerPool bounds concurrent mirror tasks so rapid scanning cannot grow
// background work without limit. Submit never blocks: when the queue is full
// the task is dropped, which is consistent with best-effort replication.
type WorkerPool struct {
	tasks     chan func(context.Context)
	wg        sync.WaitGroup
	log       *logrus.Entry
	closeOnce sync.Once
}

func NewWorkerPool(workers, queue int, log *logrus.Entry) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &WorkerPool{tasks: make(chan func(context.Context), queue), log: log}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *WorkerPool) run() {
	defer p.wg.Done()
	for task := range p.tasks {
		task(context.Background())
	}
}

func (p *WorkerPool) Submit(task func(context.Context)) {
	select {
	case p.tasks <- task:
	default:
		p.log.Warn("mirror queue full, task dropped")
	}
}

// Close stops intake and waits for queued tasks to finish. Tasks observe no
// cancellation once submitted. Submit must not be called after Close.
func (p *WorkerPool) Close() {
	p.closeOnce.Do(func() { close(p.tasks) })
	p.wg.Wait()
}

// SyncSubmitter runs tasks inline; it keeps the engine usable without a
// background pool and deterministic in tests.
type SyncSubmitter struct{}

func (SyncSubmitter) Submit(task func(context.Context)) {
	task(context.Background())
}

var (
	_ mirrorout.Submitter = (*WorkerPool)(nil)
	_ mirrorout.Submitter = SyncSubmitter{}
)
