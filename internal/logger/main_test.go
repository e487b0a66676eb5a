package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/logger"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name       string
		cfg        logger.Log
		wantErr    error
		wantOutput bool
		wantJSON   bool
	}{
		{
			name:    "missing service name",
			cfg:     logger.Log{LogLevel: "info", AppName: "clubhub"},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name:    "missing app name",
			cfg:     logger.Log{LogLevel: "info", ServiceName: "clubhub-api"},
			wantErr: logger.ErrAppNameIsEmpty,
		},
		{
			name: "no writer enabled",
			cfg:  logger.Log{LogLevel: "", ServiceName: "clubhub-api", AppName: "clubhub"},
		},
		{
			name: "console json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "clubhub-api",
				AppName:     "clubhub",
				Console:     logger.Console{Enabled: true},
			},
			wantOutput: true,
			wantJSON:   true,
		},
		{
			name: "console pretty",
			cfg: logger.Log{
				LogLevel:    "debug",
				ServiceName: "clubhub-api",
				AppName:     "clubhub",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			wantOutput: true,
		},
		{
			name: "console json trace with caller",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "clubhub-api",
				AppName:      "clubhub",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			wantOutput: true,
			wantJSON:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := captureInit(t, tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			if !tt.wantOutput {
				assert.Empty(t, out)

				return
			}

			assert.NotEmpty(t, out)

			if tt.wantJSON {
				for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
					var entry map[string]any
					require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
					assert.Equal(t, "clubhub", entry["app"])
				}
			}
		})
	}
}

func TestInitUnknownLevel(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "loud", ServiceName: "clubhub-api", AppName: "clubhub"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestInitFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	cfg := logger.Log{
		LogLevel:    "info",
		ServiceName: "clubhub-api",
		AppName:     "clubhub",
		File: logger.LogFile{
			Enabled:  true,
			Path:     dir,
			ErrorLog: "error.log",
			InfoLog:  "info.log",
			TraceLog: "trace.log",
			WarnLog:  "warn.log",
		},
	}

	require.NoError(t, logger.Init(cfg))

	log.Info().Msg("member joined")
	log.Error().Err(errors.New("boom")).Msg("join failed") //nolint:goerr113

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "member joined")
	assert.NotContains(t, string(info), "join failed")

	errLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errLog), "join failed")
}

func TestLevelWriter(t *testing.T) {
	var info, warn, errs bytes.Buffer

	lw := &logger.LevelWriter{InfoWriter: &info, WarnWriter: &warn, ErrorWriter: &errs}

	for _, l := range []zerolog.Level{zerolog.DebugLevel, zerolog.InfoLevel} {
		_, err := lw.WriteLevel(l, []byte("i"))
		require.NoError(t, err)
	}

	_, err := lw.WriteLevel(zerolog.WarnLevel, []byte("w"))
	require.NoError(t, err)

	for _, l := range []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel} {
		_, err = lw.WriteLevel(l, []byte("e"))
		require.NoError(t, err)
	}

	// no trace writer configured, output is dropped
	n, err := lw.WriteLevel(zerolog.TraceLevel, []byte("t"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = lw.WriteLevel(zerolog.Disabled, []byte("x"))
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, "ii", info.String())
	assert.Equal(t, "w", warn.String())
	assert.Equal(t, "eee", errs.String())
}

func captureInit(t *testing.T, cfg logger.Log) (string, error) {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	os.Stderr = w

	initErr := logger.Init(cfg)
	if initErr == nil {
		log.Info().Msg("club created")
		log.Error().Err(errors.New("lookup failed")).Msg("membership lookup") //nolint:goerr113
		log.Trace().Msg("kernel probe")
	}

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	return <-outC, initErr
}
