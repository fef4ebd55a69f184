package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

// FileSink appends one newline-delimited JSON record per terminal conversation
// event. The file is created if absent. Each append opens, writes, syncs and
// closes the handle.
type FileSink struct {
	path string
	mu   sync.Mutex
}

var _ contractx.OutcomeSink = (*FileSink)(nil)

func NewFileSink(path string) (*FileSink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("outcome log path is required")
	}
	return &FileSink{path: path}, nil
}

func (s *FileSink) Append(_ context.Context, rec contractx.OutcomeRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal outcome: %v", contractx.ErrPersistence, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", contractx.ErrPersistence, s.path, err)
	}

	_, writeErr := f.Write(append(payload, '\n'))
	syncErr := f.Sync()
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("%w: write %s: %v", contractx.ErrPersistence, s.path, writeErr)
	}
	if syncErr != nil {
		return fmt.Errorf("%w: sync %s: %v", contractx.ErrPersistence, s.path, syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close %s: %v", contractx.ErrPersistence, s.path, closeErr)
	}
	return nil
}
