package server

import (
	"context"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/store"
)

// Watch polls path every interval and swaps in a freshly loaded store once
// the file has stopped changing for quiet. A file that fails to load is logged
// and the current store stays. Watch returns when ctx is done.
func (s *Server) Watch(ctx context.Context, path string, interval, quiet time.Duration) {
	debounced := debounce.New(quiet)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// zero, so the first tick loads whatever is there
	var mtime time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st, err := os.Stat(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("could not stat data file")
				continue
			}
			if st.ModTime().Equal(mtime) {
				continue
			}
			mtime = st.ModTime()
			debounced(func() { s.reload(path) })
		}
	}
}

func (s *Server) reload(path string) {
	fresh, err := store.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("reload failed, keeping current store")
		return
	}
	s.Swap(fresh)
	log.Info().Str("path", path).Int("chords", len(fresh.ChordNames())).Msg("store reloaded")
}
