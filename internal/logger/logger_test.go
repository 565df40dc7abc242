package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger() (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return NewWithLogger(l), buf
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	require.NoError(t, Setup("debug", nil))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, Setup("chatty", nil))
}

func TestWithFields(t *testing.T) {
	l, buf := captureLogger()

	l.WithField("run_id", "r-1").WithFields(map[string]interface{}{"orders": 3}).Infof("scheduled %d orders", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scheduled 3 orders", entry["msg"])
	assert.Equal(t, "r-1", entry["run_id"])
	assert.Equal(t, float64(3), entry["orders"])
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), "email", "jane@example.com") //nolint:staticcheck
	ctx = context.WithValue(ctx, "request_id", "req-1")                          //nolint:staticcheck

	l := WithContext(ctx)

	assert.Equal(t, "jane@example.com", l.Data["user"])
	assert.Equal(t, "req-1", l.Data["request_id"])
	assert.Equal(t, "unknown", WithContext(context.Background()).Data["user"])
}

func TestSetupTextFormat(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	})
	buf := &bytes.Buffer{}
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	require.NoError(t, Setup("warn", buf, WithTextFormat()))
	Component("schedctl").Warnf("run timed out after %d passes", 2)

	assert.Contains(t, buf.String(), `msg="run timed out after 2 passes"`)
	assert.Contains(t, buf.String(), "component=schedctl")
	assert.NotContains(t, buf.String(), "{")
}

func TestFormattedMethodsLogAtTheirLevel(t *testing.T) {
	l, buf := captureLogger()
	l = l.WithField("machine", "VMC01")

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	dec := json.NewDecoder(buf)
	for _, want := range []struct{ level, msg string }{
		{"debug", "debug 1"},
		{"info", "info 2"},
		{"warning", "warn 3"},
		{"error", "error 4"},
	} {
		var entry map[string]interface{}
		require.NoError(t, dec.Decode(&entry))
		assert.Equal(t, want.level, entry["level"])
		assert.Equal(t, want.msg, entry["msg"])
		assert.Equal(t, "VMC01", entry["machine"])
	}
}
