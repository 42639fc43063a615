package logger

import (
	"context"
	"testing"
)

func TestLogger(t *testing.T) {
	// noisy; enable locally when poking at log output
	if true {
		t.Skip()
	}

	log := New()
	log.Infof("hello %s", "world")

	ctx := context.WithValue(context.Background(), ContextKey, log)
	FromContext(ctx).Info("from ctx")

	t.Fail()
}
