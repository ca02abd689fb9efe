package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// errInterrupted means the user aborted a prompt with Ctrl-C or closed stdin.
var errInterrupted = errors.New("input interrupted")

// prompt writes question and waits for one line of input. Interrupts are only
// trapped while the prompt is open so a running scan can still be killed.
func prompt(ctx context.Context, in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return "", goerr.Wrap(errInterrupted, "prompt cancelled", goerr.V("cause", context.Cause(ctx)))
	case err := <-errChan:
		return "", goerr.Wrap(errInterrupted, "failed to read input", goerr.V("cause", err))
	case input := <-inputChan:
		return input, nil
	}
}
