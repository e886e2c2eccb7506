package parallel

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/vrmodels"
	"github.com/gogpu/vrmodels/vrtest"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
	pool.ExecuteAll(nil)
}

func TestWorkerPool_SlowJobDoesNotBlockOthers(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var fastDone atomic.Int64
	release := make(chan struct{})
	work := []func(){
		func() { <-release },
	}
	for range 20 {
		work = append(work, func() {
			if fastDone.Add(1) == 20 {
				close(release)
			}
		})
	}

	finished := make(chan struct{})
	go func() {
		pool.ExecuteAll(work)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("ExecuteAll stalled behind a blocked job")
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	ran := false
	pool.ExecuteAll([]func(){func() { ran = true }})
	if ran {
		t.Error("ExecuteAll ran work on a closed pool")
	}
}

func TestMap(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	got := Map(pool, 10, func(i int) int { return i * i })
	for i, v := range got {
		if v != i*i {
			t.Errorf("Map()[%d] = %d, want %d", i, v, i*i)
		}
	}
	if len(Map(pool, 0, func(int) int { return 1 })) != 0 {
		t.Error("Map over zero items returned results")
	}
}

func TestMap_ConcurrentLoads(t *testing.T) {
	drv := vrtest.NewDriver()
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("model_%d", i)
		drv.AddModel(vrtest.Model{Name: names[i], LoadingPolls: i % 4})
	}
	models := vrmodels.New(drv, vrmodels.WithPollInterval(time.Millisecond))

	pool := NewWorkerPool(4)
	defer pool.Close()

	errs := Map(pool, len(names), func(i int) error {
		m, err := models.Load(names[i])
		if err != nil {
			return err
		}
		m.Close()
		return nil
	})

	for i, err := range errs {
		if err != nil {
			t.Errorf("Load(%q) = %v", names[i], err)
		}
	}
	if drv.FreedModels() != len(names) || drv.Outstanding() != 0 {
		t.Errorf("freed %d of %d models, %d outstanding", drv.FreedModels(), len(names), drv.Outstanding())
	}
}
