package tts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ExecSynthesizer shells out to an edge-tts compatible command line.
// The configured command is parsed once with shellwords so it can carry
// its own leading flags; per-request parameters and the output path are
// appended on each call.
type ExecSynthesizer struct {
	cmd []string
}

func NewExecSynthesizer(command string) (*ExecSynthesizer, error) {
	args, err := shellwords.NewParser().Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse tts command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("tts command is empty")
	}
	return &ExecSynthesizer{cmd: args}, nil
}

func (e *ExecSynthesizer) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The backend writes media to a file; stage one and remove it on
	// every exit path.
	out, err := os.CreateTemp("", "readaloud-tts-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	args := append([]string{}, e.cmd[1:]...)
	args = append(args,
		"--voice", req.Voice,
		"--rate", req.Rate,
		"--volume", req.Volume,
		"--text", req.Text,
		"--write-media", outPath,
	)

	cmd := exec.CommandContext(ctx, e.cmd[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, &SynthesisError{Err: fmt.Errorf("%w: %s", err, msg)}
		}
		return nil, &SynthesisError{Err: err}
	}

	audio, err := os.ReadFile(outPath)
	if err != nil {
		return nil, &SynthesisError{Err: fmt.Errorf("read output: %w", err)}
	}
	if len(audio) == 0 {
		return nil, &SynthesisError{Err: fmt.Errorf("backend produced no audio")}
	}
	return audio, nil
}
