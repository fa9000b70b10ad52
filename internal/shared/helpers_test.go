package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := CommandError([]byte("\n[ERROR] Failed to execute goal\n"), cause)
	assert.Equal(t, "[ERROR] Failed to execute goal: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
}
