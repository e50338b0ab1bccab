package ctrlc

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"
)

// HandleCtrlC cancels on the first interrupt and exits shortly after, so
// long property runs stop without waiting for every sample.
func HandleCtrlC(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	logger := slog.Default().With("area", "ctrlc")
	go func() {
		<-c
		logger.Info("ctrl-c")
		cancel()
		time.Sleep(time.Millisecond * 250)
		os.Exit(1)
	}()
}
