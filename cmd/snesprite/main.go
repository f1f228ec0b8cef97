package main

import (
	"fmt"
	"image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/snesprite"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func convert(c *cli.Context) error {
	s, err := snesprite.New(c.String("db"), newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer s.Close()

	s.SetTruncate(c.Bool("truncate"))

	if err := s.Convert(c.String("input"), c.String("output"), c.String("palette")); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func scan(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := snesprite.New(c.String("db"), newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer s.Close()

	if err := s.Scan(c.Args().First()); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func preview(c *cli.Context) error {
	m, err := snesprite.Preview(c.String("sprite"), c.String("palette"), c.Int("index"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	f, err := os.Create(c.String("output"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer f.Close()

	if err := png.Encode(f, m); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func listPalette(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	p, err := snesprite.ReadPalette(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for i, color := range p.Colors() {
		r, g, b := color.RGB()
		hex := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
		fmt.Fprintf(c.App.Writer, "%3d 0x%04x %s\n", i+1, uint16(color), hex)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "snesprite"
	app.Usage = "SNES sprite and palette converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SNESPRITE_DB"},
			Usage:   "path to sprite cache database",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a 16x16 image into sprite and palette files",
			Description: "The palette file is overwritten and the sprite is appended to the output file unless --truncate is used.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Usage:    "image to convert",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "sprite file to append to",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "palette",
					Aliases: []string{"p"},
					Usage:   "palette file, defaults to the output file with a .pal extension",
				},
				&cli.BoolFlag{
					Name:  "truncate",
					Usage: "truncate the sprite file rather than appending",
				},
			},
			Action: convert,
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory tree",
			Description: "Each BMP or PNG image is converted into .bin and .pal files alongside it.",
			ArgsUsage:   "DIRECTORY",
			Action:      scan,
		},
		{
			Name:  "preview",
			Usage: "Render a sprite as a PNG image",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "sprite",
					Aliases:  []string{"s"},
					Usage:    "sprite file",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "palette",
					Aliases:  []string{"p"},
					Usage:    "palette file",
					Required: true,
				},
				&cli.IntFlag{
					Name:    "index",
					Aliases: []string{"n"},
					Usage:   "which sprite in the file to render",
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "PNG file to write",
					Required: true,
				},
			},
			Action: preview,
		},
		{
			Name:      "palette",
			Usage:     "List the colors in a palette file",
			ArgsUsage: "FILE",
			Action:    listPalette,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
