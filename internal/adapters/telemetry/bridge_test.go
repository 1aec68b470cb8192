package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/jcdb/internal/adapters/telemetry"
	"go.trai.ch/jcdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_DisabledIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tracer := telemetry.NewSDKTracer(telemetry.NewBridge(log), "test")
	_, span := tracer.Start(context.Background(), "quiet")
	span.End()
}

func TestBridge_ReportsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).Times(2)

	tracer := telemetry.NewSDKTracer(telemetry.NewBridge(log), "test")
	tracer.SetVerbose(true)

	_, span := tracer.Start(context.Background(), "app.fix")
	span.SetAttribute("entries", 3)
	span.End()

	_, failed := tracer.Start(context.Background(), "app.make")
	failed.RecordError(errors.New("no sources"))
	failed.End()

	assert.True(t, strings.HasPrefix(lines[0], "trace app.fix "))
	assert.Contains(t, lines[0], "entries=3")
	assert.True(t, strings.HasPrefix(lines[1], "trace app.make "))
	assert.Contains(t, lines[1], `error="no sources"`)
}

func TestOTelTracer_SetVerboseWithoutBridge(t *testing.T) {
	tracer := telemetry.NewOTelTracerFrom(noop.NewTracerProvider(), "test")
	tracer.SetVerbose(true)
}
