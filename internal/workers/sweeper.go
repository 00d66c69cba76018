// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
)

// SweepWorker purges expired OTP sessions from a store on a fixed interval.
type SweepWorker struct {
	sweeper  store.Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewSweepWorker(sweeper store.Sweeper, interval time.Duration, logger *logger.Logger) *SweepWorker {
	return &SweepWorker{sweeper: sweeper, interval: interval, logger: logger}
}

func (w *SweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := w.sweeper.Sweep(ctx); n > 0 {
				w.logger.Debug().Str("func", "*SweepWorker.Run").Int("removed", n).Msg("expired otp sessions swept")
			}
		}
	}
}
