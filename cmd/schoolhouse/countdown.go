// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"time"
)

// countdown ticks at the given interval until the duration elapses or
// ctx is canceled, calling onTick with the remaining time after each
// tick. Returns true when the full duration elapsed, false on cancel.
// The ticker is stopped before returning in either case.
func countdown(ctx context.Context, total, interval time.Duration, onTick func(remaining time.Duration)) bool {
	deadline := time.Now().Add(total)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case now := <-ticker.C:
			remaining := deadline.Sub(now)
			if remaining <= 0 {
				if onTick != nil {
					onTick(0)
				}
				return true
			}
			if onTick != nil {
				onTick(remaining)
			}
		}
	}
}

// formatRemaining renders a duration as mm:ss for the countdown line.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
