// Package secrets extracts the gateway's bootstrap secrets from the
// diagnostic info dump produced by the gateway tooling.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"agw-agent/internal/port"
)

const (
	infoDumpCommand   = "show_gateway_info.py"
	hardwareIDLabel   = "Hardware ID"
	challengeKeyLabel = "Challenge key"
)

// ErrNotFound reports that a label or its value line is missing from the
// info dump output.
var ErrNotFound = errors.New("not found in gateway info output")

// separatorPattern matches the dashed separator lines the info dump prints
// under each label.
var separatorPattern = regexp.MustCompile(`^-(-*)`)

// Secrets holds the values required to register the gateway with the
// orchestrator.
type Secrets struct {
	HardwareID   string
	ChallengeKey string
}

// Parse extracts the bootstrap secrets from raw info dump output. Blank lines
// and separator lines are discarded; each secret is the line immediately
// following its label line.
func Parse(output string) (Secrets, error) {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line == "" || separatorPattern.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}

	hardwareID, err := valueAfter(lines, hardwareIDLabel)
	if err != nil {
		return Secrets{}, err
	}
	challengeKey, err := valueAfter(lines, challengeKeyLabel)
	if err != nil {
		return Secrets{}, err
	}
	return Secrets{HardwareID: hardwareID, ChallengeKey: challengeKey}, nil
}

// Fetch runs the info dump command and parses its output.
func Fetch(ctx context.Context, runner port.CommandRunner) (Secrets, error) {
	code, output, err := runner.Run(ctx, infoDumpCommand)
	if err != nil {
		return Secrets{}, fmt.Errorf("failed to run %s: %w", infoDumpCommand, err)
	}
	if code != 0 {
		return Secrets{}, fmt.Errorf("%s exited with code %d", infoDumpCommand, code)
	}
	return Parse(string(output))
}

func valueAfter(lines []string, label string) (string, error) {
	for i, line := range lines {
		if line == label {
			if i+1 >= len(lines) {
				return "", fmt.Errorf("value for %q: %w", label, ErrNotFound)
			}
			return lines[i+1], nil
		}
	}
	return "", fmt.Errorf("label %q: %w", label, ErrNotFound)
}
