package main

import (
	"errors"
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit value", 4, 4},
		{"sequential", 1, 1},
		{"auto", 0, min(max(gomaxprocs/2, 1), MaxWorkers)},
	}

	for _, tt := range tests {
		if got := resolvePoolSize(tt.workers); got != tt.want {
			t.Errorf("%s: resolvePoolSize(%d) = %d, want %d", tt.name, tt.workers, got, tt.want)
		}
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{MaxWorkers, false},
		{MaxWorkers + 1, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}
