// cmd/dacctl/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tamzrod/dacctl/internal/device"
	"github.com/tamzrod/dacctl/internal/dispatch"
	"github.com/tamzrod/dacctl/internal/logging"
	"github.com/tamzrod/dacctl/internal/protocol"
)

const (
	envProfile = "DACCTL_PROFILE"
	envDevice  = "DACCTL_DEVICE"
)

const usage = `dacctl - MCP4921 DAC command tool

Usage:
  dacctl [flags] <command> [<value>]

Commands (availability depends on the driver profile):
  RESET           restore power-on configuration
  ENABLE | EN     enable the output (first generation takes 0|1)
  DISABLE | DIS   disable the output
  GAIN <0|1>      select output gain
  VREF <0|1>      select buffered/unbuffered reference
  SET <mV>        write the output value through the text interface

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dacctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	profileName := fs.String("profile", os.Getenv(envProfile), "driver profile (default: catalog default)")
	devicePath := fs.String("device", os.Getenv(envDevice), "device path (default: profile path)")
	verbose := fs.Bool("v", false, "debug logging")
	list := fs.Bool("list", false, "list driver profiles and their request words")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := logging.ConfigureRuntime("dacctl")
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	// --------------------
	// Resolve protocol table
	// --------------------

	cat, err := protocol.DefaultCatalog()
	if err != nil {
		fmt.Fprintf(stderr, "dacctl: catalog: %v\n", err)
		return 1
	}

	if *list {
		printCatalog(stdout, cat)
		return 0
	}

	p, err := cat.Profile(*profileName)
	if err != nil {
		fmt.Fprintf(stderr, "dacctl: %v\n", err)
		return 2
	}

	// --------------------
	// Validate, then touch the device
	// --------------------

	open := dispatch.SessionOpener(p,
		device.WithPath(*devicePath),
		device.WithLogger(logger),
	)

	if err := dispatch.Run(p, fs.Args(), open); err != nil {
		logger.Debug().Err(err).Str("profile", p.Name).Msg("command failed")
		fmt.Fprintf(stderr, "dacctl: %v\n", err)
		if device.IsValidation(err) && device.CodeOf(err) != device.MissingArgument {
			fs.Usage()
		}
		return exitCode(err)
	}

	return 0
}

// exitCode: 0 success, 2 rejected before any IO, 1 device failure.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if device.IsValidation(err) {
		return 2
	}
	return 1
}

func printCatalog(w io.Writer, cat *protocol.Catalog) {
	for _, name := range cat.Names() {
		p, _ := cat.Profile(name)

		marker := ""
		if name == cat.Default {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s%s  %s\n", p.Name, marker, p.Path)
		if p.Description != "" {
			fmt.Fprintf(w, "  %s\n", p.Description)
		}

		for _, s := range p.Specs() {
			tokens := append([]string{s.Command.String()}, s.Aliases...)
			if s.Transport == protocol.TransportWrite {
				fmt.Fprintf(w, "  %-18s text write\n", strings.Join(tokens, "|"))
				continue
			}
			fmt.Fprintf(w, "  %-18s %s\n", strings.Join(tokens, "|"), s.Request)
		}
	}
}
