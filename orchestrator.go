package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WorkerStatus structured outcome of one worker process. The orchestrator
// only learns success or failure plus the stderr tail; root causes live in
// the worker's own log.
type WorkerStatus struct {
	WorkerID  int    `json:"workerId"`
	ShardPath string `json:"shardPath"`
	Err       string `json:"error,omitempty"`
}

// OK reports whether the worker finished cleanly.
func (s WorkerStatus) OK() bool {
	return s.Err == ""
}

// runWorkers spawns one worker process per partition by re-execing the
// current binary, then blocks until every one of them has exited. The
// returned slice is indexed by worker id. A crashed worker never disturbs
// the supervisor.
func (task *Task) runWorkers() ([]WorkerStatus, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}

	statuses := make([]WorkerStatus, task.NumWorkers)
	var g errgroup.Group
	for id := 0; id < task.NumWorkers; id++ {
		id := id
		shard := task.shardPath(id)
		statuses[id] = WorkerStatus{WorkerID: id, ShardPath: shard}

		// stale shard from an aborted run would get appended to
		os.Remove(shard)

		args := []string{
			"-worker-id", strconv.Itoa(id),
			"-p", strconv.Itoa(task.NumWorkers),
			"-z", strconv.Itoa(task.MaxZoom),
			"-s", task.StyleURL,
			"-f", task.Format,
			"-shard", shard,
			"-l", logLevel,
		}
		if configPath != "" {
			args = append(args, "-c", configPath)
		}

		g.Go(func() error {
			var stderr bytes.Buffer
			cmd := exec.Command(exe, args...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
			if err := cmd.Start(); err != nil {
				statuses[id].Err = err.Error()
				return nil
			}
			task.trackProcess(cmd.Process)
			if err := cmd.Wait(); err != nil {
				statuses[id].Err = workerFailure(err, stderr.Bytes())
				log.Errorf("worker %d exited: %s", id, statuses[id].Err)
			}
			return nil
		})
	}
	g.Wait()
	return statuses, nil
}

// workerFailure folds an exit error and the last stderr line into one
// status message.
func workerFailure(err error, stderr []byte) string {
	msg := err.Error()
	if tail := lastLine(stderr); tail != "" {
		msg += ": " + tail
	}
	return msg
}

func lastLine(b []byte) string {
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
