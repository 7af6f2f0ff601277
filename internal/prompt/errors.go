package prompt

import "errors"

// ErrAborted signals the user aborted input with Ctrl-C or closed stdin.
var ErrAborted = errors.New("prompt: aborted")
