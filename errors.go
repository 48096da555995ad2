package contour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgs is wrapped by every [CommandError].
var ErrInvalidArgs = errors.New("contour: invalid command arguments")

// CommandError is returned when a path command's argument count does not match
// its argument groups, for example an "M" command with an odd number of
// coordinates. Such a path cannot be converted.
type CommandError struct {
	// Index is the position of the command in the command list.
	Index   int
	Command Command
}

func (e *CommandError) Error() string {
	args := make([]string, len(e.Command.Args))
	for i, arg := range e.Command.Args {
		args[i] = strconv.FormatFloat(arg, 'f', -1, 64)
	}
	return fmt.Sprintf("`%s` command error:%s", e.Command.Kind, strings.Join(args, ","))
}

func (e *CommandError) Unwrap() error {
	return ErrInvalidArgs
}
