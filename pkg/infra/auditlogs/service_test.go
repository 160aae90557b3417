package auditlogs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceEmitAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	svc, err := NewService(path, logrus.New(), true)
	require.NoError(t, err)
	defer svc.Close()

	svc.Emit(Event{Type: EventTypeDecisionBlocked, Action: "BLOCK", RiskScore: 85})
	svc.Emit(Event{Type: EventTypeDecisionAllowed, Action: "ALLOW", RiskScore: 0})

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var ev Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	require.Len(t, events, 2)
	assert.Equal(t, EventTypeDecisionBlocked, events[0].Type)
	assert.Equal(t, 85, events[0].RiskScore)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, "ALLOW", events[1].Action)
}

func TestServiceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	svc, err := NewService(path, logrus.New(), false)
	require.NoError(t, err)

	svc.Emit(Event{Type: EventTypeDecisionAllowed})

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
