package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Classes implements the 'cssns classes' command
// Rewrites the class lists given as arguments, or one per stdin line.
func Classes(args []string) error {
	return classes(args, os.Stdin, os.Stdout, os.Stderr)
}

func classes(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("classes", stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	ns, log, err := common.setup(fs, stderr)
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		_, err := fmt.Fprintln(stdout, ns.Classes(fs.Args()))
		return err
	}

	scanner := bufio.NewScanner(stdin)
	lines := 0
	for scanner.Scan() {
		if _, err := fmt.Fprintln(stdout, ns.Classes(scanner.Text())); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	log.Debug(fmt.Sprintf("rewrote %d lines", lines))
	return nil
}

// joinArgs is used by commands taking a single class list spread over
// several arguments.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
