// testmodule-memory-tester runs the exported operations through the same
// code paths the shared library uses and checks that neither the Go heap
// nor the C heap grows with the number of calls.
package main

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/feather-lang/testmodule"
	"github.com/feather-lang/testmodule/internal/abi"
	"github.com/feather-lang/testmodule/internal/cmem"
)

const (
	iterations     = 10000
	reportInterval = 1000

	// Go heap growth allowed per iteration for GC lag.
	maxBytesPerIter = 50.0
)

// heapSample is the Go heap and the live C allocation count at one point.
type heapSample struct {
	goAlloc uint64
	numGC   uint32
	cLive   int64
}

func sample() heapSample {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return heapSample{goAlloc: m.Alloc, numGC: m.NumGC, cLive: cmem.Live()}
}

func (s heapSample) String() string {
	return fmt.Sprintf("go heap: %6d KB, GCs: %d, live C allocations: %d", s.goAlloc/1024, s.numGC, s.cLive)
}

// checkCHeap reports C allocations made since start that were never freed.
func checkCHeap(start heapSample) error {
	if leaked := cmem.Live() - start.cLive; leaked != 0 {
		return fmt.Errorf("%d C allocations not freed", leaked)
	}
	return nil
}

// checkGoHeap reports Go heap growth above maxBytesPerIter.
func checkGoHeap(start, end heapSample, n int) error {
	perIter := (float64(end.goAlloc) - float64(start.goAlloc)) / float64(n)
	if perIter > maxBytesPerIter {
		return fmt.Errorf("go heap grew %.2f bytes/iteration (threshold %.2f)", perIter, maxBytesPerIter)
	}
	return nil
}

// iterate runs each operation once with its buffers on the C heap, freeing
// everything it allocates.
func iterate(i int) error {
	if got := testmodule.Identity(int32(i)); got != int32(i) {
		return fmt.Errorf("identity(%d) = %d", i, got)
	}

	in, err := cmem.CString([]byte(fmt.Sprintf("iteration-%d", i)))
	if err != nil {
		return err
	}
	defer cmem.Free(in)
	dup, err := abi.Duplicate(in)
	if err != nil {
		return err
	}
	defer cmem.Free(dup)
	if cmem.Strlen(dup) != cmem.Strlen(in) {
		return fmt.Errorf("duplicate length %d, want %d", cmem.Strlen(dup), cmem.Strlen(in))
	}

	const h, w = 2, 3
	src, err := cmem.Malloc(h * w * int(unsafe.Sizeof(float64(0))))
	if err != nil {
		return err
	}
	defer cmem.Free(src)
	dst, err := cmem.Malloc(h * w * int(unsafe.Sizeof(float64(0))))
	if err != nil {
		return err
	}
	defer cmem.Free(dst)

	vals := cmem.Float64s(src, h*w)
	for j := range vals {
		vals[j] = float64(i + j)
	}
	if err := abi.GridCopy(h, w, src, dst); err != nil {
		return err
	}
	if err := abi.GridReverse(h, w, src, dst); err != nil {
		return err
	}
	if got := cmem.Float64s(src, h*w)[0]; got != float64(i+h*w-1) {
		return fmt.Errorf("reversed input starts with %v, want %v", got, float64(i+h*w-1))
	}
	return nil
}

func main() {
	start := sample()
	fmt.Println("Start:", start)

	for i := 0; i < iterations; i++ {
		if err := iterate(i); err != nil {
			fmt.Fprintf(os.Stderr, "error at iteration %d: %v\n", i, err)
			os.Exit(1)
		}
		if i%reportInterval == 0 && i > 0 {
			fmt.Printf("Iteration %5d: %s\n", i, sample())
		}
	}

	end := sample()
	fmt.Println("End:  ", end)

	failed := false
	for _, err := range []error{checkCHeap(start), checkGoHeap(start, end, iterations)} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println("PASS: No memory leaks detected")
}
