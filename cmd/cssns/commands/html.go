package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/agiangrant/cssns/htmltree"
)

// HTML implements the 'cssns html' command
func HTML(args []string) error {
	return rewriteHTML(args, os.Stdin, os.Stdout, os.Stderr)
}

func rewriteHTML(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("html", stderr)
	in := fs.StringP("in", "i", "-", "Input HTML file (- for stdin)")
	out := fs.StringP("out", "o", "-", "Output file (- for stdout)")
	fragment := fs.Bool("fragment", false, "Treat input as a fragment instead of a full document")
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

	var buf bytes.Buffer
	if *fragment {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		rendered, err := htmltree.RewriteFragment(ns, string(data))
		if err != nil {
			return err
		}
		buf.WriteString(rendered)
	} else if err := htmltree.RewriteDocument(ns, r, &buf); err != nil {
		return err
	}

	log.Debug(fmt.Sprintf("rendered %d bytes", buf.Len()))
	if err := writeOutput(*out, stdout, buf.Bytes()); err != nil {
		return err
	}
	if *out != "-" {
		log.Info("wrote " + *out)
	}
	return nil
}
