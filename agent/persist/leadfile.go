package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

// LeadFile stores captured leads as a single JSON array, rewritten in full on
// every save. A missing or corrupt file is treated as an empty list so a bad
// deploy never blocks lead capture.
type LeadFile struct {
	path string
	mu   sync.Mutex
}

func NewLeadFile(path string) (*LeadFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("lead file path is required")
	}
	return &LeadFile{path: path}, nil
}

func (l *LeadFile) Save(lead map[string]string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	leads := l.readExisting()
	leads = append(leads, lead)

	payload, err := json.MarshalIndent(leads, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: marshal leads: %v", contractx.ErrPersistence, err)
	}
	if err := os.WriteFile(l.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", contractx.ErrPersistence, l.path, err)
	}
	return nil
}

func (l *LeadFile) readExisting() []map[string]string {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var leads []map[string]string
	if err := json.Unmarshal(raw, &leads); err != nil {
		return nil
	}
	return leads
}

// OrderFile stores the latest coffee order as one JSON object, replaced on
// every placed order.
type OrderFile struct {
	path string
	mu   sync.Mutex
}

func NewOrderFile(path string) (*OrderFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("order file path is required")
	}
	return &OrderFile{path: path}, nil
}

func (o *OrderFile) Save(order map[string]any) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	payload, err := json.MarshalIndent(order, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: marshal order: %v", contractx.ErrPersistence, err)
	}
	if err := os.WriteFile(o.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", contractx.ErrPersistence, o.path, err)
	}
	return nil
}
