package cli

import (
	"context"
	"os"
)

// Execute runs the tshape CLI with the process arguments. Logs go to
// stderr at info level; --verbose lowers the level to debug. Canceling ctx
// stops the running command.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
