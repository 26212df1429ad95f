package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/abook/internal/shared"
	tu "github.com/desertthunder/abook/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			input := strings.NewReader("")
			store := &tu.MemoryStore{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Input:  input,
				Store:  store,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.input != input {
				t.Error("expected input to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
		})

		t.Run("with nil options uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.input != os.Stdin {
				t.Error("expected input to default to os.Stdin")
			}
			if runner.now == nil {
				t.Error("expected clock to be set")
			}
			if runner.store != nil {
				t.Error("expected store to be built lazily")
			}
		})

		t.Run("with custom clock", func(t *testing.T) {
			fixed := tu.Date(2024, time.June, 10)
			runner := NewRunner(RunnerOpts{Now: func() time.Time { return fixed }})

			if !runner.now().Equal(fixed) {
				t.Errorf("expected %v, got %v", fixed, runner.now())
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if output.String() != "{\"key\":\"value\"}\n" {
				t.Errorf("expected compact JSON, got %q", output.String())
			}
		})

		t.Run("returns error for unmarshalable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("returns error when write fails", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes formatted text", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("Hello %s", "Anna"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "Hello Anna" {
				t.Errorf("expected 'Hello Anna', got %q", output.String())
			}
		})

		t.Run("returns error when write fails", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeLine("test"); err == nil {
				t.Error("expected error when write fails")
			}
		})
	})

	t.Run("stops listing when output fails midway", func(t *testing.T) {
		output := &bytes.Buffer{}
		writer := tu.NewLimitedWriter(2, 0, output)
		runner := NewRunner(RunnerOpts{Output: &writer})
		book := tu.MustBook(t,
			tu.Contact{Name: "Anna", Phones: []string{"1111111111"}},
			tu.Contact{Name: "Bob", Phones: []string{"2222222222"}},
		)

		if _, err := runner.dispatch(book, "all", nil); err == nil {
			t.Fatal("expected error when output fails")
		}
		if strings.Contains(output.String(), "Bob") {
			t.Errorf("expected listing to stop before Bob, got %q", output.String())
		}
	})
}
