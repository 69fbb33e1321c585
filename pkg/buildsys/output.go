package buildsys

import (
	"context"

	"github.com/mitchellh/colorstring"
	"github.com/rs/zerolog"
)

type logKey struct{}

func log(ctx context.Context) *zerolog.Logger {
	logger := ctx.Value(logKey{})
	if logger == nil {
		panic("Logger is missing in context!")
	}

	return logger.(*zerolog.Logger)
}

// WithLogger attaches the given logger to the context
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}

// PrintTask prints a top-level step marker on the console.
func PrintTask(msg string) {
	colorstring.Printf("[blue][bold]==>[default] %s\n", msg)
}

// PrintSubtask prints a sub-step below the current task.
func PrintSubtask(msg string) {
	colorstring.Printf("[green][bold]  ->[reset] %s\n", msg)
}

// PrintError prints an error below the current task.
func PrintError(msg string) {
	colorstring.Printf("[red][bold]  ->[reset] %s\n", msg)
}
