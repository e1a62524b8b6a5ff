package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/agiangrant/cssns/internal/logger"
)

// Init implements the 'cssns init' command
func Init(args []string) error {
	return initProject(args, os.Stdout, os.Stderr)
}

func initProject(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("init", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	namespace := fs.StringP("namespace", "n", "", "Namespace (default: current directory name)")
	tailwind := fs.Bool("tailwind", false, "Keep Tailwind utility classes unprefixed")
	path := fs.String("path", ConfigFile, "Where to write the configuration")
	force := fs.Bool("force", false, "Overwrite existing files")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	ns := *namespace
	if ns == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		ns = filepath.Base(cwd)
	}

	if _, err := os.Stat(*path); err == nil {
		if !*force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
		}
		log, err := logger.New(logger.Options{Writer: stderr})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		log.Warn("overwriting " + *path)
	}

	config := DefaultConfig()
	config.Namespace = ns
	config.Tailwind = *tailwind
	if _, err := config.Compile(); err != nil {
		return err
	}

	if err := SaveConfig(*path, config); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "  ✓ Created %s (namespace %q)\n", *path, ns)
	return nil
}
