// Package glload binds the process-wide OpenGL 3.3 core function table.
package glload

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var (
	once    sync.Once
	loadErr error
)

// Load resolves the OpenGL 3.3 core entry points through proc, the symbol
// lookup of whichever windowing binding owns the current context, and binds
// them into the global function table. The table is bound once per process;
// repeat calls return the first result without resolving again. Load is not
// safe to call while another thread is issuing GL calls.
func Load(proc func(name string) unsafe.Pointer) error {
	once.Do(func() {
		if err := gl.InitWithProcAddrFunc(proc); err != nil {
			loadErr = fmt.Errorf("bind gl 3.3 core: %w", err)
		}
	})
	return loadErr
}
