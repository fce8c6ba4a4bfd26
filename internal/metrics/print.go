package metrics

import (
	"fmt"
	"io"
)

type Snapshot struct {
	DurationMs  int64
	BytesHashed int64
	// BytesPerSec is zero when the run was too short to measure.
	BytesPerSec float64
}

func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		DurationMs:  s.Duration().Milliseconds(),
		BytesHashed: s.BytesHashed,
	}
	if snap.DurationMs > 0 {
		snap.BytesPerSec = float64(snap.BytesHashed) / (float64(snap.DurationMs) / 1000.0)
	}
	return snap
}

func Print(w io.Writer, s *Stats) error {
	snap := s.Snapshot()

	lines := []string{
		"--- stats ---",
		fmt.Sprint("duration_ms: ", snap.DurationMs),
		fmt.Sprint("bytes_hashed: ", snap.BytesHashed),
	}
	if snap.BytesPerSec > 0 {
		lines = append(lines,
			fmt.Sprintf("throughput_bytes_per_sec: %.0f", snap.BytesPerSec),
			fmt.Sprintf("throughput_mb_per_sec: %.2f", snap.BytesPerSec/1_000_000.0),
		)
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
