package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "pnpm install", "npm --version")
	Responses map[string]Response

	// Calls records all commands that were executed through Run, in order.
	Calls []string

	// Execs records all commands that were executed through Exec, in order.
	Execs []string

	// EnvCalls records the environment variable maps passed to Exec, in order.
	EnvCalls []map[string]string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
	}
}

// NewSucceedingCommander creates a FakeCommander whose unmatched commands succeed
// with empty output.
func NewSucceedingCommander() *FakeCommander {
	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{}
	return fc
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{
		Output: []byte(output),
		Err:    err,
	}
}

// Run records the command and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	fullCmd := joinCmd(name, args)
	c.Calls = append(c.Calls, fullCmd)
	resp, err := c.lookup(fullCmd)
	if err != nil {
		return nil, err
	}
	return resp.Output, resp.Err
}

// Exec records the command and environment and returns the matching response's error.
func (c *FakeCommander) Exec(_ context.Context, env map[string]string, name string, args ...string) error {
	fullCmd := joinCmd(name, args)
	c.Execs = append(c.Execs, fullCmd)
	c.EnvCalls = append(c.EnvCalls, env)
	resp, err := c.lookup(fullCmd)
	if err != nil {
		return err
	}
	return resp.Err
}

func (c *FakeCommander) lookup(fullCmd string) (Response, error) {
	// Exact match first.
	if resp, ok := c.Responses[fullCmd]; ok {
		return resp, nil
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return c.Responses[bestKey], nil
	}

	if c.DefaultResponse != nil {
		return *c.DefaultResponse, nil
	}

	return Response{}, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
}

// Executed returns true if a command matching the given prefix was run through Exec.
func (c *FakeCommander) Executed(prefix string) bool {
	for _, call := range c.Execs {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// Called returns true if a command matching the given prefix was run through Run.
func (c *FakeCommander) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// CallCount returns the number of Run calls matching the given prefix.
func (c *FakeCommander) CallCount(prefix string) int {
	count := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

func joinCmd(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
