// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// interruptSignals defines the default signals to catch in order to stop a
// running search.
var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// interruptListener listens for OS Signals such as SIGINT (Ctrl+C).  It
// returns a channel that is closed when a signal is received or ctx is done.
func interruptListener(ctx context.Context, log zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, interruptSignals...)
		defer signal.Stop(interruptChannel)

		select {
		case sig := <-interruptChannel:
			log.Info().Msg("Received signal " + sig.String() + ". Stopping...")
		case <-ctx.Done():
		}
		close(done)
	}()

	return done
}

// withInterrupt returns a context that is cancelled on SIGINT or SIGTERM.
func withInterrupt(parent context.Context, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	interrupted := interruptListener(ctx, log)
	go func() {
		<-interrupted
		cancel()
	}()
	return ctx, cancel
}
