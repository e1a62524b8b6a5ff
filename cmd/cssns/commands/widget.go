package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/agiangrant/cssns"
)

// Widget implements the 'cssns widget' command
// Rewrites a widget tree serialized with Widget.ToJSON.
func Widget(args []string) error {
	return rewriteWidget(args, os.Stdin, os.Stdout, os.Stderr)
}

func rewriteWidget(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("widget", stderr)
	in := fs.StringP("in", "i", "-", "Input widget JSON file (- for stdin)")
	out := fs.StringP("out", "o", "-", "Output file (- for stdout)")
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

	r, err := openInput(*in, stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	tree, err := cssns.ParseWidgetJSON(data)
	if err != nil {
		return err
	}
	rewritten, err := ns.Widget(tree)
	if err != nil {
		return err
	}

	encoded, err := rewritten.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode widget: %w", err)
	}
	if err := writeOutput(*out, stdout, []byte(encoded+"\n")); err != nil {
		return err
	}
	if *out != "-" {
		log.Info("wrote " + *out)
	}
	return nil
}
