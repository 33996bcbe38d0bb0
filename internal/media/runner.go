// Package media acquires files via external downloader tools and
// transcodes them with ffmpeg.
package media

import (
	"context"
	"os/exec"
	"strings"
)

// Tool is an external command-line program. Only the exit code and the
// combined stdout+stderr are consumed; result files are discovered by
// scanning the working directory.
type Tool interface {
	Name() string
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// CommandTool runs a program found on PATH
type CommandTool struct {
	name string
}

// NewCommandTool creates a Tool invoking the named program
func NewCommandTool(name string) *CommandTool {
	return &CommandTool{name: name}
}

// Name returns the program name
func (t *CommandTool) Name() string {
	return t.name
}

// Run executes the program and returns its combined output
func (t *CommandTool) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, t.name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// truncate bounds diagnostic output embedded into error messages
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
