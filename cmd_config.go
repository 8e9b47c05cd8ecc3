package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"strext/xbufio"
	"strext/xstrings"
)

var configCommand = &cli.Command{
	Name:   "config",
	Usage:  "print the effective configuration as YAML",
	Action: configCmd,
}

func configCmd(c *cli.Context) (err error) {
	defer recoverWriteFailure(&err)
	cfg := configFrom(c)
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode the configuration")
	}
	w := xbufio.NewWriterSize(c.App.Writer, cfg.BufferSize)
	xstrings.Write(w, string(out))
	return errors.Wrap(w.Flush(), "failed to write the configuration")
}
