package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/listd/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"filter active", TypeFilter},
		{"/search milk", TypeSearch},
		{"clear", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddPriorityToken(t *testing.T) {
	cmd, err := Parse("/add high pay rent")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Priority != model.PriorityHigh || cmd.Add.Text != "pay rent" {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	cmd, err = Parse("/add pay rent")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Priority != model.PriorityMedium || cmd.Add.Text != "pay rent" {
		t.Fatalf("expected medium default, got %+v", cmd.Add)
	}
}

func TestParseSearchAllowsEmptyQuery(t *testing.T) {
	cmd, err := Parse("/search")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Search == nil || cmd.Search.Query != "" {
		t.Fatalf("expected empty query, got %+v", cmd.Search)
	}
}

func TestParseFilterRejectsUnknown(t *testing.T) {
	_, err := Parse("/filter done")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add low water plants")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "water plants" || a.Priority != model.PriorityLow {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("clear")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
