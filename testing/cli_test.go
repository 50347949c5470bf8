//go:build integration
// +build integration

package main

import (
	"os"
	"os/exec"
	"testing"

	qt "github.com/frankban/quicktest"
)

// blocks runs the binary built by TestMain against its own settings directory
func blocks(configPath string, args ...string) (string, error) {
	cmd := exec.Command("../cmd/blocks/blocks", append([]string{"--config-path", configPath}, args...)...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestConfig(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	output, err := blocks(dir, "config", "set", "rows", "24")
	c.Assert(err, qt.IsNil, qt.Commentf(output))
	c.Assert(output, qt.Contains, "rows is now")

	output, err = blocks(dir, "config", "get", "rows")
	c.Assert(err, qt.IsNil, qt.Commentf(output))
	c.Assert(output, qt.Equals, "24\n")

	output, err = blocks(dir, "config", "set", "cols", "2")
	c.Assert(err, qt.IsNotNil)
	c.Assert(output, qt.Contains, "invalid game configuration")

	output, err = blocks(dir, "--reset-config", "config", "get", "rows")
	c.Assert(err, qt.IsNil, qt.Commentf(output))
	c.Assert(output, qt.Equals, "20\n")
}

func TestSimulate(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	output, err := blocks(dir, "simulate", "--games", "3", "--pieces", "100", "--seed", "7")
	c.Assert(err, qt.IsNil, qt.Commentf(output))
	c.Assert(output, qt.Contains, "piece limit")
	c.Assert(output, qt.Contains, "3 games")
}

func TestScoresEmpty(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	output, err := blocks(dir, "scores")
	c.Assert(err, qt.IsNil, qt.Commentf(output))
	c.Assert(output, qt.Contains, "No scores yet")

	output, err = blocks(dir, "scores", "--last")
	c.Assert(err, qt.IsNil, qt.Commentf(output))
	c.Assert(output, qt.Contains, "No recent game")
}

func TestPlayNeedsTerminal(t *testing.T) {
	c := qt.New(t)
	output, err := blocks(c.TempDir(), "play")
	c.Assert(err, qt.IsNotNil)
	c.Assert(output, qt.Contains, "interactive terminal")
}

func TestMain(m *testing.M) {
	build := exec.Command("go", "build", "-o", "blocks", ".")
	build.Dir = "../cmd/blocks"
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}
