// Package export persists finished sessions as JSON files and reads them
// back for later settlement and review.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/bonusly-poker/internal/fileutil"
	"github.com/lox/bonusly-poker/internal/game"
	"github.com/lox/bonusly-poker/internal/session"
)

// Envelope is the saved-session file format.
type Envelope struct {
	ID          string                `json:"id"`
	SavedAt     time.Time             `json:"savedAt"`
	Games       []game.StructuredGame `json:"games"`
	NetTotals   map[string]int        `json:"netTotals"`
	Settlements []session.Transfer    `json:"settlements"`
}

// Snapshot converts a session into its persistable envelope. The totals
// are settled as part of the snapshot so the file carries the suggested
// transfers alongside the raw games.
func Snapshot(s *session.Session, clock quartz.Clock) (Envelope, error) {
	totals := s.Totals()
	transfers, err := session.Settle(totals)
	if err != nil {
		return Envelope{}, fmt.Errorf("settling session %s: %w", s.ID, err)
	}
	env := Envelope{
		ID:          s.ID,
		SavedAt:     clock.Now().UTC(),
		Games:       make([]game.StructuredGame, 0, len(s.Games())),
		NetTotals:   totals,
		Settlements: transfers,
	}
	for _, g := range s.Games() {
		env.Games = append(env.Games, g.Structured())
	}
	return env, nil
}

// Writer persists sessions to disk.
type Writer struct {
	clock quartz.Clock
}

// NewWriter returns a writer that stamps envelopes with the given clock.
func NewWriter(clock quartz.Clock) *Writer {
	return &Writer{clock: clock}
}

// Write snapshots the session and writes it to path. The write is atomic
// so an interrupted save never corrupts an earlier file at the same path.
func (w *Writer) Write(path string, s *session.Session) error {
	env, err := Snapshot(s, w.clock)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", s.ID, err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load reads a single saved session.
func Load(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &env, nil
}

// LoadAll reads several saved sessions concurrently, preserving input
// order in the result. The first failure cancels the remaining reads.
func LoadAll(ctx context.Context, paths []string) ([]*Envelope, error) {
	eg, ctx := errgroup.WithContext(ctx)
	envs := make([]*Envelope, len(paths))
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env, err := Load(path)
			if err != nil {
				return err
			}
			envs[i] = env
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return envs, nil
}

// MergeTotals combines the net totals of several envelopes, summing per
// player, so sessions from different evenings can settle together.
func MergeTotals(envs []*Envelope) map[string]int {
	merged := make(map[string]int)
	for _, env := range envs {
		for name, total := range env.NetTotals {
			merged[name] += total
		}
	}
	return merged
}
