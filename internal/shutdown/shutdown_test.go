package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"
)

func TestTrigger(t *testing.T) {
	f := New()
	if f.Requested() {
		t.Fatal("new flag is already set")
	}

	f.Trigger()
	f.Trigger()
	if !f.Requested() {
		t.Fatal("flag not set after Trigger")
	}
}

func TestConcurrentAccess(t *testing.T) {
	f := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.Trigger()
		}()
		go func() {
			defer wg.Done()
			_ = f.Requested()
		}()
	}
	wg.Wait()

	if !f.Requested() {
		t.Error("flag not set")
	}
}

func TestInstallInterrupt(t *testing.T) {
	f := New()
	f.Install()
	defer f.Stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("send SIGINT: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !f.Requested() {
		if time.Now().After(deadline) {
			t.Fatal("flag not set after SIGINT")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHandlerDetachesAfterFirstInterrupt(t *testing.T) {
	// Keep the process alive whatever happens to the handler under test.
	guard := make(chan os.Signal, 4)
	signal.Notify(guard, os.Interrupt)
	defer signal.Stop(guard)

	f := New()
	f.Install()
	defer f.Stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("send SIGINT: %v", err)
	}

	select {
	case <-f.detached:
	case <-time.After(5 * time.Second):
		t.Fatal("handler still attached after the first SIGINT")
	}
	if !f.Requested() {
		t.Error("flag not set by the first SIGINT")
	}
}

func TestStopDetachesHandler(t *testing.T) {
	f := New()
	f.Install()
	f.Stop()

	select {
	case <-f.detached:
	case <-time.After(5 * time.Second):
		t.Fatal("handler still attached after Stop")
	}
}

func TestStopTwice(t *testing.T) {
	f := New()
	f.Install()
	f.Stop()
	f.Stop()

	if f.Requested() {
		t.Error("Stop must not set the flag")
	}
}
