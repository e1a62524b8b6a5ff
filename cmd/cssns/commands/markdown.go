package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/agiangrant/cssns/htmltree"
)

// The goldmark configuration never changes, so one instance is shared.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func markdownRenderer() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAttribute(),
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		)
	})
	return markdownInstance
}

// Markdown implements the 'cssns markdown' command
// Renders Markdown to HTML and namespaces the classes it carries, either
// from heading attributes ("# Title {.this}") or from inline HTML.
func Markdown(args []string) error {
	return renderMarkdown(args, os.Stdin, os.Stdout, os.Stderr)
}

func renderMarkdown(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("markdown", stderr)
	in := fs.StringP("in", "i", "-", "Input Markdown file (- for stdin)")
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

	source, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var rendered bytes.Buffer
	if err := markdownRenderer().Convert(source, &rendered); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	namespaced, err := htmltree.RewriteFragment(ns, rendered.String())
	if err != nil {
		return err
	}
	if err := writeOutput(*out, stdout, []byte(namespaced)); err != nil {
		return err
	}
	if *out != "-" {
		log.Info("wrote " + *out)
	}
	return nil
}
