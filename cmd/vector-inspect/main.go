package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

var logger = log.NewNopLogger()

func main() {
	app := kingpin.New("vector-inspect", "A command-line tool to observe vector growth and replay operation scripts.")
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Enum("debug", "info", "warn", "error")
	maxBytes := app.Flag("max.bytes", "Largest buffer a vector may allocate, e.g. 512MiB or 2GB. Larger requests fail instead of exhausting memory.").
		Default("1GiB").String()

	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(*logLevel)
		return setAllocLimit(*maxBytes)
	})

	addGrowthCommand(app)
	addReplayCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func newLogger(lvl string) log.Logger {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(l, opt)
}

// setAllocLimit parses a human-readable byte size and installs it as the
// vector allocation ceiling.
func setAllocLimit(size string) error {
	n, err := humanize.ParseBytes(size)
	if err != nil {
		return errors.Wrap(err, "invalid --max.bytes")
	}
	if n == 0 {
		return errors.New("--max.bytes must be positive")
	}
	vector.SetMaxAllocBytes(n)
	level.Debug(logger).Log("msg", "allocation ceiling set", "bytes", n)
	return nil
}

func exitWithErr(err error) {
	level.Error(logger).Log("err", err)
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
