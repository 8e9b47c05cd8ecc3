package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"strext/xbufio"
	"strext/xfmt"
	"strext/xlog"
	"strext/xstrconv"
	"strext/xstrings"
)

var flagCommand = &cli.Command{
	Name:      "flag",
	Usage:     "print a flag's colours in rgb",
	UsageText: "flag [--name NAME] [--color name=r,g,b ...] [--swatch]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Value: "pan",
			Usage: "flag name used in the heading",
		},
		&cli.StringSliceFlag{
			Name:  "color",
			Usage: "colour as name=r,g,b; repeat for each stripe (default: the pan flag)",
		},
		&cli.BoolFlag{
			Name:  "swatch",
			Usage: "follow each colour with a coloured block",
		},
	},
	Action: flagCmd,
}

type color struct {
	Name    string
	R, G, B uint8
}

var panColors = []color{
	{Name: "pink", R: 255, G: 27, B: 141},
	{Name: "yellow", R: 255, G: 218, B: 0},
	{Name: "blue", R: 27, G: 179, B: 255},
}

func (c color) rgb() xfmt.Triple[uint8, uint8, uint8] {
	return xfmt.T3(c.R, c.G, c.B)
}

func (c color) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// parseColor parses "name=r,g,b" with each channel in 0..255.
func parseColor(s string) (color, error) {
	name, channels, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return color{}, errors.Errorf("colour %q: want name=r,g,b", s)
	}
	parts := strings.Split(channels, ",")
	if len(parts) != 3 {
		return color{}, errors.Errorf("colour %q: want 3 channels, got %d", s, len(parts))
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := xstrconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return color{}, errors.Wrapf(err, "colour %q", s)
		}
		if n < 0 || n > 255 {
			return color{}, errors.Errorf("colour %q: channel %d out of range", s, n)
		}
		rgb[i] = uint8(n)
	}
	return color{Name: name, R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

func flagCmd(c *cli.Context) (err error) {
	defer recoverWriteFailure(&err)
	cfg := configFrom(c)

	colors := panColors
	if specs := c.StringSlice("color"); len(specs) > 0 {
		colors = make([]color, 0, len(specs))
		for _, spec := range specs {
			col, err := parseColor(spec)
			if err != nil {
				return err
			}
			colors = append(colors, col)
		}
	}
	swatch := cfg.Swatch
	if c.IsSet("swatch") {
		swatch = c.Bool("swatch")
	}

	w := xbufio.NewWriterSize(c.App.Writer, cfg.BufferSize)
	var render func(color) string
	if swatch {
		style := lipgloss.NewRenderer(c.App.Writer).NewStyle()
		render = func(col color) string {
			return style.Background(lipgloss.Color(col.hex())).Render("   ")
		}
	}
	writeFlagReport(w, c.String("name"), colors, render)
	xstrings.Writeln(w, "")

	xlog.Debug().Str("flag", c.String("name")).Int("colors", len(colors)).Bool("swatch", swatch).Msg("flag report written")
	return errors.Wrap(w.Flush(), "failed to write the flag report")
}

// writeFlagReport writes the greeting, a heading and one "name: (r, g, b)"
// line per colour. The last line has no trailing newline. When swatch is
// non-nil its output follows each colour after a space.
func writeFlagReport[B xstrings.Buffer](b B, name string, colors []color, swatch func(color) string) B {
	c := xstrings.On(b).
		Writeln("hello world!").
		Write("The ").Write(name).Writeln(" flag's colours are (in rgb):")

	for i, col := range colors {
		last := i == len(colors)-1
		c.Write(col.Name).Write(": ")
		switch {
		case swatch != nil:
			c.WriteDebug(col.rgb()).Write(" ").Write(swatch(col))
			if !last {
				c.Write("\n")
			}
		case last:
			c.WriteDebug(col.rgb())
		default:
			c.WritelnDebug(col.rgb())
		}
	}
	return b
}
