package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		expectTrace bool
		expectDebug bool
	}{
		{name: "info level", debug: false},
		{name: "debug level", debug: true, expectTrace: true, expectDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			logger := log.New()

			out, err := Setup(logger, &console, Options{Debug: tt.debug})
			require.NoError(t, err)
			defer out.Close()

			logger.Debug("hidden unless debug")
			logger.Info("always visible")

			assert.Contains(t, console.String(), "always visible")
			assert.Equal(t, tt.expectDebug, bytes.Contains(console.Bytes(), []byte("hidden unless debug")))
			assert.Equal(t, tt.expectTrace, out.Trace != nil)
		})
	}
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	var console bytes.Buffer
	logger := log.New()

	out, err := Setup(logger, &console, Options{File: path})
	require.NoError(t, err)

	logger.WithField("repository", "api").Warn("Repository api not found or access denied")
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "repository=api")
	assert.Contains(t, console.String(), "repository=api")
}

func TestSetup_BadFile(t *testing.T) {
	_, err := Setup(log.New(), &bytes.Buffer{}, Options{File: filepath.Join(t.TempDir(), "missing", "audit.log")})
	assert.Error(t, err)
}
