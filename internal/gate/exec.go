package gate

import (
	"os"
	"os/exec"
	"syscall"

	"aurora/pkg/serrors"
)

// sysExec is swapped out in tests; syscall.Exec replaces the process image and
// never returns on success.
var sysExec = syscall.Exec //nolint: gochecknoglobals

// Handoff replaces the current process with the given command. The argument
// vector is passed through unmodified, so any downstream command can be
// substituted transparently. On success this function does not return; a
// missing or unresolvable command is a fatal local failure.
func Handoff(argv []string) error {
	if len(argv) == 0 {
		return serrors.With(serrors.ErrBadRequest, "no command to hand off to")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not resolve command %q", argv[0])
	}

	return sysExec(path, argv, os.Environ())
}
