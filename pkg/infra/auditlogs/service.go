package auditlogs

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Service interface {
	Emit(event Event)
	Close() error
}

// service appends events to a JSONL file. Emit never fails the request
// that triggered it; write errors are logged and dropped.
type service struct {
	enabled bool
	logger  *logrus.Logger
	mu      sync.Mutex
	file    *os.File
}

func NewService(path string, logger *logrus.Logger, enabled bool) (Service, error) {
	s := &service{enabled: enabled, logger: logger}
	if !enabled {
		return s, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	s.file = file
	return s, nil
}

func (s *service) Emit(event Event) {
	if !s.enabled || s.file == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	line, err := json.Marshal(event)
	if err != nil {
		s.logger.WithError(err).Warn("audit event not serializable")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(append(line, '\n')); err != nil {
		s.logger.WithError(err).Warn("audit trail write failed")
	}
}

func (s *service) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
