package main

import (
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vclassroom/local-app/internal/log"
)

type countingCloser struct {
	closed atomic.Int32
}

func (c *countingCloser) Close() error {
	c.closed.Add(1)
	return nil
}

func TestCloseOnSignal_StopEndsWatch(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	closer := &countingCloser{}

	stop := closeOnSignal(sigChan, closer, log.Discard())

	finished := make(chan struct{})
	go func() {
		stop()
		stop()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("stop did not end the watch")
	}
	assert.Zero(t, closer.closed.Load())
}

func TestCloseOnSignal_ClosesOnSignal(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	closer := &countingCloser{}

	stop := closeOnSignal(sigChan, closer, log.Discard())
	sigChan <- syscall.SIGTERM

	assert.Eventually(t, func() bool { return closer.closed.Load() == 1 }, time.Second, 5*time.Millisecond)
	stop()
	assert.Equal(t, int32(1), closer.closed.Load())
}
