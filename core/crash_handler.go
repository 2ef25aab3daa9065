package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores terminal state; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct {
	f Finalizer
}

var crashTerminal atomic.Pointer[finalizerBox]

// SetCrashTerminal registers the screen to finalize before a crash report is printed
// Pass nil to unregister
func SetCrashTerminal(f Finalizer) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&finalizerBox{f: f})
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if box := crashTerminal.Load(); box != nil {
		box.f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
