package shellcmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mangohow/strstack/cmd/strstack/internal/config"
	"github.com/mangohow/strstack/tools/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, s collection.Stack, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, NewSession(s).Run(context.Background(), strings.NewReader(script), &out))
	return out.String()
}

func TestSession(t *testing.T) {
	script := strings.Join([]string{
		"push Hello",
		"push hello world",
		"",
		"size",
		"pop",
		"pop",
		"pop",
		"push",
		"peek",
		"quit",
		"push ignored",
	}, "\n")

	want := strings.Join([]string{
		"ok",
		"ok",
		"2/10",
		"hello world",
		"Hello",
		"error: stack is empty",
		"error: usage: push <value>",
		`error: unknown command "peek", try help`,
	}, "\n") + "\n"

	s := collection.NewStack()
	assert.Equal(t, want, runScript(t, s, script))
	assert.True(t, s.Empty())
}

func TestSessionLimits(t *testing.T) {
	s := collection.NewStack(collection.WithInitialCapacity(1), collection.WithMaxCapacity(1))
	out := runScript(t, s, "push "+strings.Repeat("a", 101)+"\npush a\npush b\r\nsize\n")

	assert.Equal(t, strings.Join([]string{
		"error: string size exceeds the maximum limit: 101 bytes, limit 100",
		"ok",
		"error: stack capacity reached the maximum limit",
		"1/1",
	}, "\n")+"\n", out)
}

func TestSessionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewSession(collection.NewStack()).Run(ctx, strings.NewReader("push a\n"), &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestCmdShell(t *testing.T) {
	opts := &config.Options{InitialCapacity: 2, MaxCapacity: 4, MaxElementBytes: 10}
	cmd := NewCmdShell(opts)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("push a\npush b\npush c\nsize\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ok\nok\nok\n3/4\n", out.String())
}

func TestSessionLongLine(t *testing.T) {
	s := collection.NewStack()
	out := runScript(t, s, "push "+strings.Repeat("a", 70000)+"\nsize\npush a\nsize\n")

	assert.Equal(t, strings.Join([]string{
		"error: string size exceeds the maximum limit: line longer than 65536 bytes",
		"0/10",
		"ok",
		"1/10",
	}, "\n")+"\n", out)
}

func TestSessionLastLineWithoutNewline(t *testing.T) {
	assert.Equal(t, "ok\nb\n", runScript(t, collection.NewStack(), "push b\npop"))
}
