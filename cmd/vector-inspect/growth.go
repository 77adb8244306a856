package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// growthCommand pushes integers into a vector and reports every
// reallocation triggered along the way.
type growthCommand struct {
	pushes  *int
	reserve *int
}

// reallocation is one capacity change observed while pushing.
type reallocation struct {
	size   int
	oldCap int
	newCap int
	bytes  int
}

func (cmd *growthCommand) run(_ *kingpin.ParseContext) error {
	reallocs, v, err := observeGrowth(*cmd.pushes, *cmd.reserve)
	if err != nil {
		exitWithErr(errors.Wrap(err, "failed to grow vector"))
	}

	bold := color.New(color.Bold)
	bold.Println("Reallocations:")
	fmt.Printf("\t%8s  %10s  %10s  %10s\n", "size", "old cap", "new cap", "reserved")
	for _, r := range reallocs {
		fmt.Printf("\t%8d  %10d  %10d  %10s\n", r.size, r.oldCap, r.newCap, humanize.Bytes(uint64(r.bytes)))
	}

	m := v.Metrics()
	bold.Println("Final:")
	fmt.Printf(
		"\tsize: %d, capacity: %d, reallocations: %d, reserved: %v, utilization: %.1f%%\n",
		m.Size,
		m.Capacity,
		len(reallocs),
		humanize.Bytes(uint64(m.BytesReserved)),
		m.Utilization*100,
	)
	return nil
}

// observeGrowth pushes n values into a vector reserved to reserve slots and
// records each capacity change.
func observeGrowth(n, reserve int) ([]reallocation, *vector.Vector[int], error) {
	v, err := vector.NewWithCapacity[int](reserve)
	if err != nil {
		return nil, nil, err
	}

	var reallocs []reallocation
	for i := 0; i < n; i++ {
		oldCap := v.Capacity()
		if err := v.PushBack(i); err != nil {
			return nil, nil, err
		}
		if v.Capacity() != oldCap {
			r := reallocation{size: v.Size(), oldCap: oldCap, newCap: v.Capacity(), bytes: v.BytesReserved()}
			level.Debug(logger).Log("msg", "vector reallocated", "size", r.size, "old_cap", r.oldCap, "new_cap", r.newCap)
			reallocs = append(reallocs, r)
		}
	}
	level.Info(logger).Log("msg", "growth finished", "pushes", n, "reserve", reserve, "reallocations", len(reallocs))
	return reallocs, v, nil
}

func addGrowthCommand(app *kingpin.Application) {
	cmd := &growthCommand{}
	growth := app.Command("growth", "Push integers into a vector and print every reallocation.").Action(cmd.run)
	cmd.pushes = growth.Flag("pushes", "Number of elements to push.").Default("1000").Int()
	cmd.reserve = growth.Flag("reserve", "Capacity to reserve before pushing.").Default("0").Int()
}
