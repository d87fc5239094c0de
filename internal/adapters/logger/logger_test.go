package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jackal/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("compiling 3 files")

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "compiling 3 files")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("jill not found")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "jill not found")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(errors.New("exit status 2"))

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "exit status 2")
}
