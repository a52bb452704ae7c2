package main

import (
	"os"
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFiles []string
		wantLevel string
		wantCode  int
		wantDone  bool
	}{
		{"no args", nil, nil, "", 0, false},
		{"files", []string{"a.txt", "b.txt"}, []string{"a.txt", "b.txt"}, "", 0, false},
		{"level", []string{"-log-level", "debug", "a.txt"}, []string{"a.txt"}, "debug", 0, false},
		{"bad level", []string{"-log-level", "loud"}, nil, "loud", 1, true},
		{"unknown flag", []string{"-nope"}, nil, "", 2, true},
		{"help", []string{"-h"}, nil, "", 0, true},
	}

	stderr := os.Stderr
	devnull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close()
	os.Stderr = devnull
	defer func() { os.Stderr = stderr }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, code, done := parseFlags(tt.args)
			if code != tt.wantCode || done != tt.wantDone {
				t.Fatalf("parseFlags() code, done = %d, %v, want %d, %v", code, done, tt.wantCode, tt.wantDone)
			}
			if done {
				return
			}
			if opts.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", opts.LogLevel, tt.wantLevel)
			}
			if len(opts.Files) != 0 || len(tt.wantFiles) != 0 {
				if !reflect.DeepEqual(opts.Files, tt.wantFiles) {
					t.Errorf("Files = %v, want %v", opts.Files, tt.wantFiles)
				}
			}
			if !opts.Watch {
				t.Error("Watch defaults to false")
			}
		})
	}
}
