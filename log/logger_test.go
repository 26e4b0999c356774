package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in     string
		exp    Level
		expErr bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{" Info ", Info, false},
		{"NOTICE", Notice, false},
		{"warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error for %q", index, s.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", index, s.exp, level)
		}
	}
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("log-test")

	SetLevel(Warning)
	logger.Notice("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected notice to be filtered at warning level; got %q", buf.String())
	}

	SetLevel(Debug)
	logger.Debugf("visible %d", 42)
	if !strings.Contains(buf.String(), "visible 42") {
		t.Fatalf("expected debug output in sink; got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[log-test]") {
		t.Fatalf("expected module name in output; got %q", buf.String())
	}

	SetLevel(Notice)
}
