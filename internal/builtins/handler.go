// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"fmt"
	"io"

	"sandshell/internal/vfs"
	"sandshell/pkg/vpath"
)

type (
	// HandlerContext provides execution context for builtin commands. The
	// shell executor builds one per pipeline stage, wiring the prior
	// stage's output into Stdin and capturing Stdout for the next stage.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the current working directory inside the virtual
		// filesystem.
		Dir vpath.Path
		// FS is the virtual filesystem all file operations go through.
		// Builtins never touch the host filesystem.
		FS *vfs.FS
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context. Commands
// are only ever dispatched by the executor (or tests), both of which install
// one; a missing HandlerContext is a programming error.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext)
	if !ok {
		panic("builtins: no HandlerContext in context")
	}
	return hc
}

// Resolve resolves a command argument path against the working directory.
func (hc *HandlerContext) Resolve(arg string) vpath.Path {
	return vpath.Resolve(hc.Dir, vpath.Path(arg))
}

// wrapError wraps an error with the [builtin] prefix format. The prefix
// identifies errors from virtual shell builtins, distinguishing them from
// shell-level failures in mixed output. Returns nil if err is nil.
func wrapError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[builtin] %s: %w", cmdName, err)
}
