package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/inlinetry/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_inlinetry", "", "")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	tc.SetOut(stdout)
	tc.SetErr(stderr)
	tc.SetArgs(args)

	err := tc.Execute()
	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test_inlinetry "+cli.Version+"\n", out)
}

func TestCounter(t *testing.T) {
	t.Parallel()

	out, err := run(t, "counter")
	require.NoError(t, err)

	want := []string{
		"call 1: kind 1 (cli.kindA)",
		"call 2: kind 2 (cli.kindB)",
		"call 3: value 3",
		"call 4: value 4",
		"call 5: kind 3 (error)",
		"    type: *cli.outOfRangeError what: Just some text",
		"call 6: value 6",
		"call 7: kind 4 (...)",
		"call 8: value 8",
		"call 9: value 9",
		"total 0 value: 5",
		"total 1 cli.kindA: 1",
		"total 2 cli.kindB: 1",
		"total 3 error: 1",
		"total 4 ...: 1",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestCounter_Calls(t *testing.T) {
	t.Parallel()

	out, err := run(t, "counter", "--calls", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "total 0 value: 0")
	assert.NotContains(t, out, "call 3")

	_, err = run(t, "counter", "--calls", "-1")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	t.Parallel()

	out, err := run(t, "bench", "--iterations", "100", "--parallel", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for i, name := range []string{"adapter", "flat", "nested"} {
		assert.True(t, strings.HasPrefix(lines[i], name), lines[i])
		// 7 of every 10 calls return a value: 70 per worker.
		assert.Contains(t, lines[i], "count: 140 ")
	}

	_, err = run(t, "bench", "--iterations", "0")
	require.Error(t, err)
}

func TestBadLogFormat(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--log_format", "xml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
