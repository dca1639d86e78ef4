package main

import (
	"errors"
	"testing"
)

func TestWorkerStatus(t *testing.T) {
	ok := WorkerStatus{WorkerID: 0, ShardPath: "/tmp/shard_0.mbtiles"}
	if !ok.OK() {
		t.Error("status without error should be OK")
	}
	bad := WorkerStatus{WorkerID: 1, Err: "exit status 1: render: fetch failed"}
	if bad.OK() {
		t.Error("status with error should not be OK")
	}
}

func TestWorkerFailure(t *testing.T) {
	err := errors.New("exit status 1")

	if got := workerFailure(err, nil); got != "exit status 1" {
		t.Errorf("got %q", got)
	}

	stderr := []byte("some earlier noise\nrender: fetch http://x: connection refused\n")
	got := workerFailure(err, stderr)
	want := "exit status 1: render: fetch http://x: connection refused"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLastLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"one\n", "one"},
		{"one\ntwo\nthree\n\n", "three"},
		{"  padded  \n", "padded"},
	}
	for _, c := range cases {
		if got := lastLine([]byte(c.in)); got != c.want {
			t.Errorf("lastLine(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWorkerErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &WorkerError{Kind: errKindShard, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("WorkerError should unwrap to its cause")
	}
	if err.Error() != "shard: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
}
