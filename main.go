// Command strext exercises the xstrings chain helpers from the command line.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"strext/xlog"
	"strext/xstrings"
)

var Version = "dev"

const configKey = "config"

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		xlog.Fatal().Err(err).Msg("strext failed")
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:     "strext",
		Usage:    "chainable string append demo",
		Version:  Version,
		Reader:   in,
		Writer:   out,
		Metadata: map[string]any{},
		// colours are name=r,g,b; keep each --color value whole
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"STREXT_CONFIG"},
			},
		},
		Before:   setup,
		Commands: []*cli.Command{flagCommand, debugCommand, configCommand},
	}
}

func setup(c *cli.Context) error {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	xlog.SetJSON(cfg.LogJSON)
	if err := xlog.SetLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	xlog.Debug().Str("file", cfg.ConfigFile).Int("buffer_size", cfg.BufferSize).Msg("configuration loaded")
	c.App.Metadata[configKey] = cfg
	return nil
}

func configFrom(c *cli.Context) *Config {
	if cfg, ok := c.App.Metadata[configKey].(*Config); ok {
		return cfg
	}
	return DefaultConfig()
}

// recoverWriteFailure turns a failed append on the command's output into
// the command's error. Any other panic is re-raised.
func recoverWriteFailure(err *error) {
	r := recover()
	if r == nil {
		return
	}
	failure, ok := r.(*xstrings.WriteFailure)
	if !ok {
		panic(r)
	}
	*err = errors.Wrap(failure, "failed to write output")
}
