package gate

import (
	"os"
	"testing"

	"aurora/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func stubExec(t *testing.T) (*string, *[]string) {
	t.Helper()

	var (
		gotPath string
		gotArgv []string
	)

	orig := sysExec
	sysExec = func(path string, argv []string, _ []string) error {
		gotPath = path
		gotArgv = argv

		return nil
	}
	t.Cleanup(func() { sysExec = orig })

	return &gotPath, &gotArgv
}

func TestHandoff_PassesArgvThroughUnmodified(t *testing.T) {
	path, argv := stubExec(t)

	// the test binary itself is guaranteed to resolve
	want := []string{os.Args[0], "work", "--once", "-c", "config.yml"}
	require.NoError(t, Handoff(want))

	require.Equal(t, os.Args[0], *path)
	require.Equal(t, want, *argv)
}

func TestHandoff_EmptyArgv(t *testing.T) {
	stubExec(t)

	err := Handoff(nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestHandoff_MissingBinaryIsFatal(t *testing.T) {
	stubExec(t)

	err := Handoff([]string{"definitely-not-a-real-binary-5481"})
	require.ErrorIs(t, err, serrors.ErrInternal)
}
