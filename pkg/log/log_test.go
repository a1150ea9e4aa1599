package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	previous := std.Out
	std.SetOutput(buf)
	std.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	t.Cleanup(func() { std.SetOutput(previous) })

	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{
		"advertiser_id": "adv1",
		"user_agent":    "curl",
	}).Info("hello")

	out := buf.String()
	assert.Contains(t, out, "advertiser_id=adv1")
	assert.Contains(t, out, id)
	assert.NotContains(t, out, "user_agent")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{"user_agent": "curl"}).Info("hello")

	assert.Contains(t, buf.String(), "user_agent=curl")
}
