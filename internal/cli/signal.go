package cli

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// interruptContext is cancelled by SIGINT or SIGTERM and remembers which signal arrived.
type interruptContext struct {
	context.Context
	cancel context.CancelFunc
	got    atomic.Value
}

func watchInterrupts(parent context.Context) *interruptContext {
	ctx, cancel := context.WithCancel(parent)
	ic := &interruptContext{Context: ctx, cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			ic.got.Store(sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ic
}

// Stop releases the signal handler.
func (ic *interruptContext) Stop() { ic.cancel() }

// Signal returns the signal that cancelled the context, or nil.
func (ic *interruptContext) Signal() os.Signal {
	sig, _ := ic.got.Load().(os.Signal)
	return sig
}
