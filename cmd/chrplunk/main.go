package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/chrplunk"
	"github.com/bodgit/chrplunk/chr"
	"github.com/bodgit/chrplunk/ines"
	"github.com/urfave/cli/v2"
)

const defaultDB = "chrplunk.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func replaceExt(file, ext string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ext
}

func decodeROM(file string) (*ines.ROM, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ines.Decode(f)
}

func main() {
	app := cli.NewApp()

	app.Name = "chrplunk"
	app.Usage = "NES CHR graphics and ROM utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"CHRPLUNK_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to ROM catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Print iNES header details for a ROM",
			Description: "",
			ArgsUsage:   "ROM",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				rom, err := decodeROM(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("PRG ROM:   %d bytes (%d x 16 KB)\n", rom.PRGSize(), rom.PRGSize()/ines.PRGBankSize)
				fmt.Printf("CHR ROM:   %d bytes (%d x 8 KB)\n", rom.CHRSize(), rom.BankCount())
				if !rom.HasCHR() {
					fmt.Println("           uses CHR RAM, no graphics data in file")
				}
				fmt.Printf("Mapper:    %d\n", rom.Mapper())
				fmt.Printf("Mirroring: %s\n", rom.Mirroring())
				fmt.Printf("Trainer:   %t\n", rom.Trainer())

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Extract CHR data from a ROM to a .chr file",
			Description: "",
			ArgsUsage:   "ROM",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "bank",
					Aliases: []string{"b"},
					Value:   -1,
					Usage:   "bank to extract, all banks if negative",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file, defaults to the ROM name with a .chr extension",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				rom, err := decodeROM(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b := rom.CHR()
				if bank := c.Int("bank"); bank >= 0 {
					if b, err = rom.Bank(bank); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				output := c.String("output")
				if output == "" {
					output = replaceExt(c.Args().First(), ".chr")
				}

				if err := ioutil.WriteFile(output, b, 0644); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "render",
			Usage:       "Render a .chr file to a PNG image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 2,
					Usage: "pixel scale factor",
				},
				&cli.IntFlag{
					Name:  "per-row",
					Value: 16,
					Usage: "tiles per row",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file, defaults to the input name with a .png extension",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				sheet, err := chr.Decode(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				output := c.String("output")
				if output == "" {
					output = replaceExt(c.Args().First(), ".png")
				}

				out, err := os.Create(output)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer out.Close()

				if err := png.Encode(out, sheet.Image(c.Int("per-row"), c.Int("scale"), nil)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Convert an image to a .chr file",
			Description: "",
			ArgsUsage:   "IMAGE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file, defaults to the image name with a .chr extension",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, _, err := image.Decode(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				output := c.String("output")
				if output == "" {
					output = replaceExt(c.Args().First(), ".chr")
				}

				out, err := os.Create(output)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer out.Close()

				if err := chr.EncodeImage(out, m); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and catalog ROM metadata",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(ioutil.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				db, err := chrplunk.NewROMDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m := chrplunk.New(db, logger)
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
