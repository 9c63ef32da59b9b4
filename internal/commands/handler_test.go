package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	fail bool
}

func (testMessage) Type() string { return "cheatsheet.test.message" }

func (m testMessage) Validate() error {
	if m.fail {
		return errors.New("message invalid")
	}
	return nil
}

func TestHandlerExecutesCommand(t *testing.T) {
	ran := false
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		ran = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !ran {
		t.Fatalf("command function did not run")
	}
}

func TestHandlerValidationFailure(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatalf("command must not run when validation fails")
		return nil
	})

	err := h.Execute(context.Background(), testMessage{fail: true})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerExecutionFailure(t *testing.T) {
	boom := errors.New("render failed")
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := h.Execute(context.Background(), testMessage{})
	if !errors.Is(err, boom) {
		t.Fatalf("cause lost from chain: %v", err)
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerWrappedErrorPassesThrough(t *testing.T) {
	wrapped := goerrors.Wrap(errors.New("root"), goerrors.CategoryCommand, "already tagged")
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return wrapped
	})

	err := h.Execute(context.Background(), testMessage{})
	if !errors.Is(err, wrapped) {
		t.Fatalf("pre-wrapped error must pass through unchanged: %v", err)
	}
}

func TestHandlerCanceledContext(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatalf("command must not run on a canceled context")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Execute(ctx, testMessage{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerTimeout(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		<-ctx.Done()
		return nil
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestHandlerNilContext(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatalf("handler must supply a context")
		}
		return nil
	})

	var ctx context.Context
	if err := h.Execute(ctx, testMessage{}); err != nil {
		t.Fatalf("execute with nil context: %v", err)
	}
}
