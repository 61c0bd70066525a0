package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/bodgit/picard/ar"
	"github.com/bodgit/plumbing"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var errTableWithOutput = errors.New("--table cannot be used with --output")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func openOutput(c *cli.Context) (io.WriteCloser, error) {
	if !c.IsSet("output") {
		return plumbing.NopWriteCloser(os.Stdout), nil
	}
	return os.Create(c.String("output"))
}

func openInput(c *cli.Context) ([]byte, error) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	return readInput(c.Args().First(), c.String("format"))
}

func openRecords(c *cli.Context) (*ar.Reader, error) {
	b, err := openInput(c)
	if err != nil {
		return nil, err
	}

	return ar.NewReader(bytes.NewReader(b)), nil
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeader(header)

	return table
}

func decode(c *cli.Context) error {
	if c.IsSet("output") && c.Bool("table") {
		return cli.NewExitError(errTableWithOutput, 1)
	}

	b, err := openInput(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if c.IsSet("output") && !c.Bool("keep-going") {
		f, err := openOutput(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer f.Close()

		n, err := ar.DecodeAll(f, bytes.NewReader(b))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Printf("%d responses written to %s\n", n, c.String("output"))

		return nil
	}

	// Per-record loop so --keep-going can report a failure and carry on
	r := ar.NewReader(bytes.NewReader(b))

	var w *ar.Writer
	var table *tablewriter.Table

	switch {
	case c.IsSet("output"):
		f, err := openOutput(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer f.Close()
		w = ar.NewWriter(f)
	case c.Bool("table"):
		table = newTable("#", "Recv", "Mode", "Send")
	default:
		fmt.Println("picard: PIC Action Replay Decoder")
		fmt.Println("Make it so!")
		fmt.Println()
	}

	failed := 0
	for {
		rec, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return cli.NewExitError(err, 1)
		}
		i := r.Count() - 1

		if w == nil && table == nil {
			fmt.Println("recv:", rec)
		}

		resp, err := rec.Decode()
		if err != nil {
			err = fmt.Errorf("record %d: %w", i, err)
			if !c.Bool("keep-going") {
				return cli.NewExitError(err, 1)
			}
			log.Println(err)
			failed++
			if table != nil {
				table.Append([]string{strconv.Itoa(i), rec.String(), ar.Variant(rec).String(), "-"})
			}
			continue
		}

		switch {
		case w != nil:
			if err := w.Write(resp); err != nil {
				return cli.NewExitError(err, 1)
			}
		case table != nil:
			table.Append([]string{strconv.Itoa(i), rec.String(), ar.Variant(rec).String(), resp.String()})
		default:
			fmt.Println("send:", resp)
			fmt.Println()
		}
	}

	if table != nil {
		table.Render()
	}

	if n := r.Dropped(); n > 0 {
		log.Printf("ignored %d trailing bytes", n)
	}

	if w != nil {
		fmt.Printf("%d responses written to %s\n", w.Count(), c.String("output"))
	}

	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d records failed to decode", failed), 1)
	}

	return nil
}

func seal(c *cli.Context) error {
	r, err := openRecords(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	f, err := openOutput(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer f.Close()

	for {
		rec, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return cli.NewExitError(err, 1)
		}

		rec.Seal()

		b, err := rec.MarshalBinary()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if _, err := f.Write(b); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	return nil
}

func info(c *cli.Context) error {
	r, err := openRecords(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	table := newTable("#", "Mode", "Key", "Variant", "Checksum")

	for {
		rec, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return cli.NewExitError(err, 1)
		}

		sum := rec.Checksum()
		status := "OK"
		if !rec.Valid() {
			status = fmt.Sprintf("BAD (want 0x%02x%02x)", sum[0], sum[1])
		}

		table.Append([]string{
			strconv.Itoa(r.Count() - 1),
			fmt.Sprintf("0x%02x", uint8(rec.Mode())),
			fmt.Sprintf("0x%02x", rec.Key()),
			ar.Variant(rec).String(),
			status,
		})
	}

	table.Render()

	if n := r.Dropped(); n > 0 {
		fmt.Printf("\n%d trailing bytes ignored\n", n)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "picard"
	app.Usage = "PIC Action Replay decoder"
	app.Version = "1.0.0"

	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "input `FORMAT`, one of auto, raw or hex",
		Value:   formatAuto,
	}

	app.Commands = []*cli.Command{
		{
			Name:        "decode",
			Usage:       "Decode the records in a capture into responses",
			Description: "",
			ArgsUsage:   "INPUT",
			Action:      decode,
			Flags: []cli.Flag{
				formatFlag,
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write raw responses to `FILE`",
				},
				&cli.BoolFlag{
					Name:    "table",
					Aliases: []string{"t"},
					Usage:   "print the responses as a table, not with --output",
				},
				&cli.BoolFlag{
					Name:    "keep-going",
					Aliases: []string{"k"},
					Usage:   "report records that fail to decode and carry on",
				},
			},
		},
		{
			Name:        "seal",
			Usage:       "Rewrite the checksum of each record",
			Description: "",
			ArgsUsage:   "INPUT",
			Action:      seal,
			Flags: []cli.Flag{
				formatFlag,
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write sealed records to `FILE`",
				},
			},
		},
		{
			Name:        "info",
			Usage:       "Show the mode, key and checksum status of each record",
			Description: "",
			ArgsUsage:   "INPUT",
			Action:      info,
			Flags: []cli.Flag{
				formatFlag,
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
