package sessionkey

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("session-key", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 32 {
		t.Fatalf("expected default bytes 32, got %d", cfg.Bytes)
	}

	fs = flag.NewFlagSet("session-key", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-bytes", "64"})
	if err != nil || cfg.Bytes != 64 {
		t.Fatalf("override = %+v, %v", cfg, err)
	}

	fs = flag.NewFlagSet("session-key", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-invalid"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunWritesHex(t *testing.T) {
	buf := &bytes.Buffer{}
	reader := bytes.NewReader(bytes.Repeat([]byte{0xab}, 32))
	if err := Run(Config{Bytes: 32}, buf, reader); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "LASTWALK_SESSION_SECRET=" + strings.Repeat("ab", 32)
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunRejections(t *testing.T) {
	if err := Run(Config{Bytes: 16}, &bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected error for short key")
	}
	if err := Run(Config{Bytes: 32}, nil, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
	if err := Run(Config{Bytes: 32}, &bytes.Buffer{}, errReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
}

func TestGenerateRoundTripsThroughDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{Bytes: 40}, buf, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	value := strings.TrimPrefix(strings.TrimSpace(buf.String()), EnvVar+"=")
	secret, err := Decode(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(secret) != 40 {
		t.Fatalf("secret length = %d, want 40", len(secret))
	}
}

func TestDecodeRejections(t *testing.T) {
	tests := []string{"", "  ", "zz", strings.Repeat("ab", 8)}
	for _, value := range tests {
		if _, err := Decode(value); err == nil {
			t.Fatalf("Decode(%q) expected error", value)
		}
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }
