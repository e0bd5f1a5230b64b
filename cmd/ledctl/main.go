// cmd/ledctl/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tamzrod/dacctl/internal/config"
	"github.com/tamzrod/dacctl/internal/led"
	"github.com/tamzrod/dacctl/internal/logging"
)

const usage = `ledctl - sysfs LED helper

Usage:
  ledctl [flags] <index> on|off|get|toggle

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(stderr, "ledctl: catalog: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("ledctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	root := fs.String("root", cfg.LED.Root, "sysfs platform directory")
	attr := fs.String("attr", cfg.LED.Attribute, "LED attribute name (value, my_gpio_value)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := logging.ConfigureRuntime("ledctl")

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return 2
	}

	index, err := strconv.Atoi(rest[0])
	if err != nil || index < 0 || (cfg.LED.Count > 0 && index >= cfg.LED.Count) {
		fmt.Fprintf(stderr, "ledctl: bad led index %q\n", rest[0])
		return 2
	}

	l := led.New(*root, index, *attr)
	logger.Debug().Str("path", l.Path()).Str("op", rest[1]).Msg("led")

	switch strings.ToLower(rest[1]) {
	case "on":
		err = l.On()
	case "off":
		err = l.Off()
	case "get":
		var v int
		if v, err = l.Value(); err == nil {
			fmt.Fprintln(stdout, v)
		}
	case "toggle":
		var v int
		if v, err = l.Toggle(); err == nil {
			fmt.Fprintln(stdout, v)
		}
	default:
		fmt.Fprintf(stderr, "ledctl: unknown operation %q\n", rest[1])
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "ledctl: %v\n", err)
		return 1
	}
	return 0
}
