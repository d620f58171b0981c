// Command blazecat is a diagnostic tool for the Blaze packet protocol:
// it frames packets off a TCP connection or a capture file and prints
// each one with the color pretty-printer. It establishes no transport
// of its own beyond a plain net.Dial - TLS, proxying, and reconnection
// policy are an external collaborator's job (spec.md §1).
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/blazepk/blazepk"
)

func main() {
	app := cli.NewApp()
	app.Name = "blazecat"
	app.Usage = "dump Blaze packets from a live connection or capture file"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "dial",
			Usage: "TCP address to connect to, e.g. gosredirector.ea.com:42127",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "capture file of raw, back-to-back Blaze frames to read instead of dialing",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable ANSI color regardless of terminal detection",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: 10 * time.Second,
			Usage: "dial timeout",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "blazecat:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var src io.Reader
	switch {
	case c.String("dial") != "":
		conn, err := net.DialTimeout("tcp", c.String("dial"), c.Duration("timeout"))
		if err != nil {
			return fmt.Errorf("dial %s: %w", c.String("dial"), err)
		}
		defer conn.Close()
		src = conn
	case c.String("file") != "":
		f, err := os.Open(c.String("file"))
		if err != nil {
			return fmt.Errorf("open %s: %w", c.String("file"), err)
		}
		defer f.Close()
		src = f
	default:
		return fmt.Errorf("one of --dial or --file is required")
	}

	opts := blaze.DefaultOptions()
	if c.Bool("no-color") {
		opts.PrettyColorSet = true
		opts.PrettyColor = false
	}
	printer := blaze.NewPrinterWithOptions(os.Stdout, opts)

	for {
		pkt, err := blaze.DecodePacket(src)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode packet: %w", err)
		}
		fmt.Fprintln(os.Stdout, pkt.String())
		printer.Dump(pkt.Payload)
		fmt.Fprintln(os.Stdout)
	}
}
