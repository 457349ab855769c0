package probe

import "sync"

// Checker runs free-space probes on a single long-lived background
// goroutine so that the interactive session never blocks on filesystem
// syscalls.
//
// At most one check is scheduled at any time. When the path changes while a
// check is scheduled or running, the pending path is simply replaced: the
// next probe picks up whatever path is most recent, so no queue of stale
// requests can build up while the user is still typing.
type Checker struct {
	mu        sync.Mutex
	path      string
	scheduled bool

	probe func(string) Result
	reply func(Result)

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	closeOnce sync.Once
}

// NewChecker starts the background worker. reply is invoked on the worker
// goroutine once per completed probe; it must not block for long, or checks
// will back up behind it.
func NewChecker(reply func(Result)) *Checker {
	return newChecker(Probe, reply)
}

func newChecker(probe func(string) Result, reply func(Result)) *Checker {
	c := &Checker{
		probe: probe,
		reply: reply,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go c.run()
	return c
}

// RequestCheck records path as the latest candidate and wakes the worker
// unless a check is already scheduled. Safe to call from any goroutine;
// never blocks.
func (c *Checker) RequestCheck(path string) {
	c.mu.Lock()
	c.path = path
	if !c.scheduled {
		c.scheduled = true
		// Capacity 1 plus the scheduled guard means this send can never block.
		c.wake <- struct{}{}
	}
	c.mu.Unlock()
}

// consumeLatestPath hands the most recent path to the worker and clears the
// scheduled flag. Clearing must happen before the probe runs: a path change
// arriving during a slow probe then schedules a fresh run instead of being
// dropped.
func (c *Checker) consumeLatestPath() string {
	c.mu.Lock()
	path := c.path
	c.scheduled = false
	c.mu.Unlock()
	return path
}

func (c *Checker) run() {
	defer close(c.done)
	for {
		select {
		case <-c.stop:
			return
		case <-c.wake:
			path := c.consumeLatestPath()
			c.reply(c.probe(path))
		}
	}
}

// Close stops the worker and blocks until it has exited. Once Close
// returns, reply will not be invoked again.
func (c *Checker) Close() {
	c.closeOnce.Do(func() { close(c.stop) })
	<-c.done
}
