package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// opArity is the number of integer arguments each script operation takes.
var opArity = map[string]int{
	"push":    1,
	"pop":     0,
	"insert":  2,
	"erase":   1,
	"reserve": 1,
	"resize":  1,
	"clear":   0,
	"at":      1,
	"print":   0,
}

// op is a single parsed line of a replay script.
type op struct {
	line int
	name string
	args []int
}

// parseScript reads one operation per line. Blank lines and lines starting
// with '#' are skipped.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		name := strings.ToLower(fields[0])
		arity, ok := opArity[name]
		if !ok {
			return nil, errors.Errorf("line %d: unknown operation %q", n, fields[0])
		}
		if len(fields)-1 != arity {
			return nil, errors.Errorf("line %d: %s takes %d argument(s), got %d", n, name, arity, len(fields)-1)
		}

		o := op{line: n, name: name, args: make([]int, arity)}
		for i, f := range fields[1:] {
			x, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: %s argument %d", n, name, i+1)
			}
			o.args[i] = x
		}
		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}
	return ops, nil
}

// replay runs the script from r against a fresh vector, writing the output
// of print and at operations to w.
func replay(r io.Reader, w io.Writer) (*vector.Vector[int], error) {
	ops, err := parseScript(r)
	if err != nil {
		return nil, err
	}

	v := vector.New[int]()
	for _, o := range ops {
		if err := apply(v, o, w); err != nil {
			return v, errors.Wrapf(err, "line %d: %s", o.line, o.name)
		}
		level.Debug(logger).Log("msg", "applied", "line", o.line, "op", o.name, "size", v.Size(), "capacity", v.Capacity())
	}
	return v, nil
}

func apply(v *vector.Vector[int], o op, w io.Writer) error {
	switch o.name {
	case "push":
		return v.PushBack(o.args[0])
	case "pop":
		v.PopBack()
	case "insert":
		i := o.args[0]
		if i < 0 || i > v.Size() {
			return errors.Wrapf(vector.ErrOutOfRange, "insert position %d with size %d", i, v.Size())
		}
		return v.InsertAt(i, o.args[1])
	case "erase":
		i := o.args[0]
		if i < 0 || i >= v.Size() {
			return errors.Wrapf(vector.ErrOutOfRange, "erase position %d with size %d", i, v.Size())
		}
		v.EraseAt(i)
	case "reserve":
		return v.Reserve(o.args[0])
	case "resize":
		return v.Resize(o.args[0])
	case "clear":
		v.Clear()
	case "at":
		x, err := v.At(o.args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "at %d = %d\n", o.args[0], *x)
	case "print":
		printState(w, v)
	}
	return nil
}

func printState(w io.Writer, v *vector.Vector[int]) {
	fmt.Fprintf(w, "size=%d capacity=%d %v\n", v.Size(), v.Capacity(), v)
}

// replayCommand replays operation scripts from files.
type replayCommand struct {
	files *[]string
}

func (cmd *replayCommand) run(_ *kingpin.ParseContext) error {
	for _, f := range *cmd.files {
		if err := cmd.replayFile(f); err != nil {
			exitWithErr(err)
		}
	}
	return nil
}

func (cmd *replayCommand) replayFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = f.Close() }()

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)

	v, err := replay(f, os.Stdout)
	if err != nil {
		return errors.Wrap(err, name)
	}

	m := v.Metrics()
	fmt.Print("\tfinal: ")
	printState(os.Stdout, v)
	fmt.Printf("\treserved: %v, utilization: %.1f%%\n", humanize.Bytes(uint64(m.BytesReserved)), m.Utilization*100)
	return nil
}

func addReplayCommand(app *kingpin.Application) {
	cmd := &replayCommand{}
	c := app.Command("replay", "Replay operation scripts against a vector of integers.").Action(cmd.run)
	cmd.files = c.Arg("file", "The scripts to replay.").Required().ExistingFiles()
}
