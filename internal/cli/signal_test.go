package cli

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchInterrupts_RecordsSignal(t *testing.T) {
	ic := watchInterrupts(context.Background())
	defer ic.Stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ic.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
	assert.Equal(t, syscall.SIGTERM, ic.Signal())
}

func TestWatchInterrupts_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ic := watchInterrupts(parent)
	defer ic.Stop()

	cancel()
	<-ic.Done()
	assert.Nil(t, ic.Signal())
}
