package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"strext/xbufio"
	"strext/xfmt"
	"strext/xlog"
	"strext/xstrings"
)

var debugCommand = &cli.Command{
	Name:  "debug",
	Usage: "echo stdin lines in their debug representation",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "number",
			Usage: "prefix each line with its number, as a (n, \"line\") tuple",
		},
	},
	Action: debugCmd,
}

func debugCmd(c *cli.Context) (err error) {
	defer recoverWriteFailure(&err)
	cfg := configFrom(c)
	r := xbufio.NewReaderSize(c.App.Reader, cfg.BufferSize)
	w := xbufio.NewWriterSize(c.App.Writer, cfg.BufferSize)

	n, err := echoDebug(w, r, c.Bool("number"))
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	xlog.Debug().Int("lines", n).Msg("debug echo done")
	return errors.Wrap(w.Flush(), "failed to write output")
}

// echoDebug writes one debug line per input line, without the line
// terminator, and returns the number of lines written.
func echoDebug[B xstrings.Buffer](b B, r *xbufio.Reader, number bool) (int, error) {
	c := xstrings.On(b)
	n := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			n++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if number {
				c.WritelnDebug(xfmt.T2(n, line))
			} else {
				c.WritelnDebug(line)
			}
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
