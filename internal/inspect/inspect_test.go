package inspect

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/fragtext/internal/config"
	"github.com/dshills/fragtext/internal/engine/fragment"
	"github.com/dshills/fragtext/internal/logging"
)

func run(t *testing.T, tb fragment.Table, cfg config.Config, name string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(tb, cfg, nil, &out).Run(name, args)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tb := fragment.FromStrings("hello ", "", "world")
	cfg := config.Default()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"render", nil, "hello world\n"},
		{"len", nil, "11\n"},
		{"stat", nil, "bytes=11 fragments=3 runes=11 width=11 valid=true\n"},
		{"fragments", nil, "0\t0\t\"hello \"\n1\t6\t\"\"\n2\t6\t\"world\"\n"},
		{"locate", []string{"6"}, "fragment=2 offset=0 byte='w'\n"},
		{"equal", []string{"hello world"}, "true\n"},
		{"equal", []string{"hello"}, "false\n"},
		{"find", []string{"o w"}, "4\n"},
		{"find", []string{"xyz"}, "-1\n"},
		{"slice", []string{"3", "8"}, "lo wo\n"},
		{"width", nil, "width=11 east_asian=11\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tb, cfg, tt.name, tt.args...)
			if err != nil {
				t.Fatalf("Run(%s): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Run(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestHashMatchesTable(t *testing.T) {
	a, _ := run(t, fragment.FromStrings("ab", "c"), config.Default(), "hash")
	b, _ := run(t, fragment.FromStrings("a", "bc"), config.Default(), "hash")
	if a != b || len(a) != 17 {
		t.Errorf("hash output %q vs %q", a, b)
	}
}

func TestTrimAndQuote(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Quote = true
	got, err := run(t, fragment.FromStrings("  ", " a\t", "b ", " "), cfg, "trim")
	if err != nil {
		t.Fatal(err)
	}
	if got != "\"a\\tb\"\n" {
		t.Errorf("trim = %q", got)
	}
}

func TestBytes(t *testing.T) {
	cfg := config.Default()
	got, _ := run(t, fragment.FromStrings("a", "é"[:1], "é"[1:]), cfg, "bytes")
	if want := "0\t0x61\n1\t0xc3\n2\t0xa9\n"; got != want {
		t.Errorf("bytes = %q, want %q", got, want)
	}

	cfg.Output.Offsets = false
	got, _ = run(t, fragment.FromStrings("a"), cfg, "bytes")
	if got != "0x61\n" {
		t.Errorf("bytes = %q", got)
	}
}

func TestRunesPolicy(t *testing.T) {
	world := "世"
	tb := fragment.FromStrings("a", world[:1], world[1:], "\xff", "b")

	tests := []struct {
		policy config.Policy
		want   string
		err    error
	}{
		{config.PolicyStrict, "0\t'a'\n1\t'世'\n", fragment.ErrInvalidSequence},
		{config.PolicyReplace, "0\t'a'\n1\t'世'\n4\t'�'\n5\t'b'\n", nil},
		{config.PolicySkip, "0\t'a'\n1\t'世'\n5\t'b'\n", nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			cfg := config.Default()
			cfg.Decode.Policy = tt.policy

			var out, logs bytes.Buffer
			log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &logs})
			err := New(tb, cfg, log, &out).Run("runes", nil)
			if !errors.Is(err, tt.err) {
				t.Errorf("Run(runes) error = %v, want %v", err, tt.err)
			}
			if out.String() != tt.want {
				t.Errorf("runes = %q, want %q", out.String(), tt.want)
			}
			if !strings.Contains(logs.String(), "offset=4") {
				t.Errorf("expected a warning for offset 4, got %q", logs.String())
			}
		})
	}
}

func TestRunesTruncated(t *testing.T) {
	tb := fragment.FromStrings("ok", "世"[:2])
	_, err := run(t, tb, config.Default(), "runes")
	if !errors.Is(err, fragment.ErrTruncatedSequence) {
		t.Errorf("error = %v, want ErrTruncatedSequence", err)
	}

	got, _ := run(t, tb, config.Default(), "stat")
	if !strings.HasPrefix(got, "bytes=4 fragments=2 runes=2 ") || !strings.HasSuffix(got, "valid=false\n") {
		t.Errorf("stat = %q", got)
	}
}

func TestUsageErrors(t *testing.T) {
	tb := fragment.FromStrings("abc")
	cfg := config.Default()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"nope", nil, ErrUsage},
		{"locate", nil, ErrUsage},
		{"locate", []string{"x"}, ErrUsage},
		{"locate", []string{"3"}, fragment.ErrOffsetOutOfRange},
		{"slice", []string{"2", "1"}, fragment.ErrRangeInvalid},
		{"render", []string{"extra"}, ErrUsage},
	}
	for _, tt := range tests {
		if _, err := run(t, tb, cfg, tt.name, tt.args...); !errors.Is(err, tt.want) {
			t.Errorf("Run(%s, %q) error = %v, want %v", tt.name, tt.args, err, tt.want)
		}
	}
}

func TestCommandsUsage(t *testing.T) {
	lines := Commands()
	if len(lines) != len(commands) {
		t.Fatalf("Commands() returned %d lines, want %d", len(lines), len(commands))
	}
	if !strings.HasPrefix(lines[0], "bytes ") {
		t.Errorf("first line = %q, want bytes first", lines[0])
	}
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "slice <start> <end>") {
			found = true
		}
	}
	if !found {
		t.Error("missing slice usage line")
	}
}
