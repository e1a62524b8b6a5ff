package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/agiangrant/cssns"
	"github.com/agiangrant/cssns/internal/logger"
)

// commonFlags are shared by every command that rewrites classes.
type commonFlags struct {
	config    string
	namespace string
	include   string
	exclude   string
	self      string
	tailwind  bool
	logLevel  string
	logHuman  bool
}

func newFlagSet(name string, stderr io.Writer) (*pflag.FlagSet, *commonFlags) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)

	c := &commonFlags{}
	fs.StringVarP(&c.config, "config", "c", "", "Path to cssns.toml/.yaml/.json (default: search current directory)")
	fs.StringVarP(&c.namespace, "namespace", "n", "", "Namespace, or a path whose last segment is used")
	fs.StringVar(&c.include, "include", "", "Regexp selecting tokens to prefix")
	fs.StringVar(&c.exclude, "exclude", "", "Regexp exempting tokens from prefixing")
	fs.StringVar(&c.self, "self", "", "Regexp selecting tokens replaced by the namespace")
	fs.BoolVar(&c.tailwind, "tailwind", false, "Keep Tailwind utility classes unprefixed")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&c.logHuman, "log-human", false, "Human readable log output")
	return fs, c
}

// setup loads the project config, applies flag overrides and builds the
// namespacer and logger for a command run.
func (c *commonFlags) setup(fs *pflag.FlagSet, stderr io.Writer) (*cssns.Namespacer, *logger.Logger, error) {
	config, err := LoadConfig(c.config)
	if err != nil {
		return nil, nil, err
	}

	if fs.Changed("namespace") {
		config.Namespace = c.namespace
	}
	if fs.Changed("include") {
		config.Include = c.include
	}
	if fs.Changed("exclude") {
		config.Exclude = c.exclude
	}
	if fs.Changed("self") {
		config.Self = c.self
	}
	if fs.Changed("tailwind") {
		config.Tailwind = c.tailwind
	}
	if fs.Changed("log-level") {
		config.Log.Level = c.logLevel
	}
	if fs.Changed("log-human") {
		config.Log.Human = c.logHuman
	}

	log, err := logger.New(logger.Options{
		Level:         config.Log.Level,
		HumanReadable: config.Log.Human,
		Writer:        stderr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log = log.With("command", fs.Name())

	compiled, err := config.Compile()
	if err != nil {
		return nil, nil, err
	}

	ns, err := cssns.New(compiled,
		cssns.WithCache(config.CacheSize),
		cssns.WithLogger(log.Zerolog()),
	)
	if err != nil {
		return nil, nil, err
	}
	log.Debug(fmt.Sprintf("using namespace %q", ns.Options().Namespace()))
	return ns, log, nil
}

// openInput returns stdin for "" or "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// writeOutput writes data to path, or stdout for "" or "-".
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
