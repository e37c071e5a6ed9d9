package crewerr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap("run", nil); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapPrefixesOp(t *testing.T) {
	err := Wrap("train", errors.New("model exploded"))
	if got := err.Error(); got != "train: model exploded" {
		t.Errorf("Error() = %q", got)
	}
	if KindOf(err) != Delegated {
		t.Errorf("KindOf() = %v, want Delegated", KindOf(err))
	}
}

func TestWrapPreservesOriginalText(t *testing.T) {
	cause := errors.New("unexpected status 500: boom")
	err := Wrap("run", cause)
	if !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("wrapped message %q does not contain original %q", err.Error(), cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestWrapCancellation(t *testing.T) {
	err := Wrap("run", fmt.Errorf("crew: %w", context.Canceled))
	if KindOf(err) != Canceled {
		t.Errorf("KindOf() = %v, want Canceled", KindOf(err))
	}
}

func TestUsagef(t *testing.T) {
	err := Usagef("task-id is required for %s", "replay")
	if KindOf(err) != Usage {
		t.Errorf("KindOf() = %v, want Usage", KindOf(err))
	}
	if got := err.Error(); got != "task-id is required for replay" {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("whatever")) != Delegated {
		t.Error("plain errors should default to Delegated")
	}
	if KindOf(context.Canceled) != Canceled {
		t.Error("bare context.Canceled should classify as Canceled")
	}
}
