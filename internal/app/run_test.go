package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/agecheck/internal/prompt"
)

func TestRun_Transcripts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "one below threshold", input: "17\n", want: "Input your age: child\n"},
		{name: "exactly at threshold", input: "18\n", want: "Input your age: adult\n"},
		{name: "surrounding whitespace", input: "  42  \n", want: "Input your age: adult\n"},
		{name: "negative age", input: "-5\n", want: "Input your age: child\n"},
		{name: "non-numeric text", input: "abc\n", want: "Input your age: You absolute failure\n"},
		{name: "empty line", input: "\n", want: "Input your age: You absolute failure\n"},
		{name: "out of 8-bit range", input: "300\n", want: "Input your age: You absolute failure\n"},
		{name: "decimal number", input: "12.5\n", want: "Input your age: You absolute failure\n"},
		{name: "unterminated final line", input: "21", want: "Input your age: adult\n"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}
			testApp, _ := SetupAppTest(t, strings.NewReader(tc.input), out)

			// --- Act ---
			err := testApp.Run(context.Background())

			// --- Assert ---
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("output transcript mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_ClosedInputIsFatal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An input stream that closes before any data arrives must surface as
	// an error, not as the friendly parse-failure message.
	out := &bytes.Buffer{}
	testApp, _ := SetupAppTest(t, strings.NewReader(""), out)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, prompt.ErrNoInput)
	require.Equal(t, "Input your age: ", out.String(), "the prompt is written, but no result line follows")
}

func TestRun_ConsumesExactlyOneLine(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	testApp, _ := SetupAppTest(t, strings.NewReader("18\n19\n20\n"), out)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Input your age: adult\n", out.String(), "exactly one prompt and one result line per run")
}

func TestRun_DiagnosticsStayOffStdout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	testApp, logBuffer := SetupAppTest(t, strings.NewReader("30\n"), out)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Input your age: adult\n", out.String())
	require.Contains(t, logBuffer.String(), "Age classified.", "debug breadcrumbs go to the diagnostic writer")
}
