package xqsem_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jacoelho/xqsem"
)

func TestAnalyzerConcurrent(t *testing.T) {
	a := newLibAnalyzer(t, xqsem.NewOptions().WithDefaultElementNamespace("urn:doc"))

	const goroutines = 8
	const iterations = 25

	errCh := make(chan error, goroutines*iterations)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if got := a.Expand(xqsem.ParseQName("para"), xqsem.ContextDefaultElement); len(got) != 1 {
					errCh <- fmt.Errorf("Expand(para) = %v", got)
					return
				}
				if got := xqsem.ParseSequenceType("record(next as ..?)*").TypeName(); got != "record(next as ..?)*" {
					errCh <- fmt.Errorf("TypeName() = %q", got)
					return
				}
				call := xqsem.Call[int]{Positional: []int{i, j, i + j}}
				res, err := xqsem.ResolveCall(a, xqsem.ParseQName("ex:concat"), call, nil)
				if err != nil {
					errCh <- err
					return
				}
				if res.Bindings[2].Kind != xqsem.Bound || res.Bindings[2].Value != i+j {
					errCh <- fmt.Errorf("bindings = %+v", res.Bindings)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent analyzer error: %v", err)
	}
}
