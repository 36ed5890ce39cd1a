package stato

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_WireNames(t *testing.T) {
	names := map[Status]string{
		StatusOK:                    "OK",
		StatusIllegalEvent:          "ERROR_ILLEGAL_EVENT",
		StatusInvalidStartState:     "ERROR_INVALID_START_STATE",
		StatusNoValidStates:         "ERROR_NO_VALID_STATES",
		StatusInvalidEventNode:      "ERROR_INVALID_EVENT_NODE",
		StatusInvalidTargetState:    "ERROR_INVALID_TARGET_STATE",
		StatusInvalidTransitionFunc: "ERROR_INVALID_TRANSISTION_FUNCTION",
		StatusInvalidActionFunc:     "ERROR_INVALID_ACTION_FUNCTION",
		StatusImproperlyInitialized: "ERROR_IMPROPERLY_INITIALIZED",
	}

	for status, name := range names {
		assert.Equal(t, name, status.String())
	}

	assert.Equal(t, "UNKNOWN", Status(999).String())
}

func TestStatus_IsOK(t *testing.T) {
	assert.True(t, StatusOK.IsOK())
	assert.False(t, StatusIllegalEvent.IsOK())
}

func TestProblem_String(t *testing.T) {
	p := Problem{Status: StatusInvalidTargetState, Detail: "bad target"}
	assert.Equal(t, "ERROR_INVALID_TARGET_STATE: bad target", p.String())
}
