package util

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"
)

// RunCPUProfile runs fn with CPU profiling written to filename and
// returns fn's error joined with any profiling error.
func RunCPUProfile(filename string, fn func() error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err = pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()
	return fn()
}

func MemProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.GC()
	return pprof.Lookup("allocs").WriteTo(f, 0)
}
