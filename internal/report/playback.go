package report

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"asteroid-sim/internal/history"
)

// ReplayLog decodes a JSONL export and hands each record to w in file order.
//
// With speed > 0, the wait before a record is the gap between its CreatedAt
// and the previous record's CreatedAt, divided by speed: 2 replays twice as
// fast as the analyses were recorded, 0.5 half as fast. Records that are out
// of order or share a timestamp go out immediately. With speed <= 0 nothing
// waits. Cancelling ctx stops the replay between records and returns
// ctx.Err().
func ReplayLog(ctx context.Context, r io.Reader, w ResultWriter, speed float64) error {
	dec := json.NewDecoder(r)
	var last time.Time
	for {
		var rec history.Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if speed > 0 && !last.IsZero() {
			if err := waitGap(ctx, rec.CreatedAt.Sub(last), speed); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(rec); err != nil {
			return err
		}
		last = rec.CreatedAt
	}
}

func waitGap(ctx context.Context, gap time.Duration, speed float64) error {
	d := time.Duration(float64(gap) / speed)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ReplayLogFile replays the JSONL export at path.
func ReplayLogFile(ctx context.Context, path string, w ResultWriter, speed float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReplayLog(ctx, f, w, speed)
}
