package lescan

import (
	"sync"
	"testing"
	"time"
)

func TestLoopRunsInOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 100 {
		t.Fatalf("ran %d of 100 posted funcs", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestLoopPostAfterCloseDropped(t *testing.T) {
	l := NewLoop()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	ran := false
	l.Post(func() { ran = true })
	if ran {
		t.Fatal("work ran after close")
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLoopRepost(t *testing.T) {
	l := NewLoop()
	done := make(chan struct{})
	l.Post(func() {
		l.Post(func() { close(done) })
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reposted work never ran")
	}
	l.Close()
}

func TestLoopConcurrentProducers(t *testing.T) {
	l := NewLoop()
	const n = 50
	var wg sync.WaitGroup
	var ran []int
	for g := 0; g < 4; g++ {
		wg.Add(1)
		g := g
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				l.Post(func() { ran = append(ran, g) })
			}
		}()
	}
	wg.Wait()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if len(ran) != 4*n {
		t.Fatalf("ran %d of %d posted funcs", len(ran), 4*n)
	}
}
