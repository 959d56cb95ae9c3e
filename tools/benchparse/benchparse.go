package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/wI2L/jettison"

	"github.com/wI2L/jscalar"
)

var (
	omitMem       = flag.Bool("omit-mem", false, "omit B/op stat")
	omitAllocs    = flag.Bool("omit-allocs", false, "omit allocs/op stat")
	omitBandwidth = flag.Bool("omit-bandwidth", false, "omit MB/s stat")
	flagInput     = flag.String("in", "benchstats.csv", "csv-formatted benchstat file")
	flagOutput    = flag.String("out", "benchstats.json", "json-formatted data table file")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchparse [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

type set map[string][]benchStat

type benchStat struct {
	Name  string
	Value float64
	Unit  string
}

type gcDataTables map[string][][]interface{}

type omissions struct {
	mem, allocs, bandwidth bool
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "caller", log.DefaultCaller)

	flag.Usage = usage
	flag.Parse()

	if err := run(*flagInput, *flagOutput, omissions{
		mem:       *omitMem,
		allocs:    *omitAllocs,
		bandwidth: *omitBandwidth,
	}); err != nil {
		level.Error(logger).Log("msg", "conversion failed", "in", *flagInput, "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "data tables written", "out", *flagOutput)
}

func run(in, out string, omit omissions) error {
	file, err := os.Open(in)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer file.Close()

	stats, err := parse(file)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", in)
	}
	b, err := jettison.Marshal(transform(stats, omit))
	if err != nil {
		return errors.Wrap(err, "encoding data tables")
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "opening output")
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return errors.Wrap(f.Sync(), "syncing output")
}

func parse(rd io.Reader) (set, error) {
	var (
		i     int
		unit  string
		stats = make(set)
		scanr = bufio.NewScanner(rd)
	)
	// The first line is always the header of the
	// first section. All the next section headers
	// will be detected thanks to the empty line
	// that precede them.
	nextIsHdr := true

	for ; scanr.Scan(); i++ {
		line := scanr.Text()

		if len(line) == 0 {
			nextIsHdr = true
			continue
		}
		r := strings.Split(line, ",")

		if nextIsHdr {
			if len(r) != 2 {
				return nil, errors.Errorf("invalid header at line %d", i)
			}
			fields := strings.Fields(r[1])
			if len(fields) < 2 {
				return nil, errors.Errorf("invalid header at line %d: no unit", i)
			}
			unit = strings.Trim(fields[1], "()")
			nextIsHdr = false
			continue
		}
		idx := strings.Index(r[0], "/")
		if idx == -1 {
			return nil, errors.Errorf("invalid run name at line %d: no separator", i)
		}
		bname, rname := r[0][:idx], r[0][idx+1:]
		if idx := strings.LastIndexByte(rname, '-'); idx != -1 {
			rname = rname[:idx]
		}
		if _, ok := stats[bname]; !ok {
			stats[bname] = nil
		}
		if len(r) <= 1 {
			continue
		}
		v, err := jscalar.Parse(r[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value at line %d", i)
		}
		if v.Kind() != jscalar.Number {
			return nil, errors.Errorf("invalid value at line %d: got %s, want number", i, v.Kind())
		}
		stats[bname] = append(stats[bname], benchStat{
			Name:  rname,
			Value: v.Number(),
			Unit:  unit,
		})
	}
	if err := scanr.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// transform converts a stats set to a 2D data-table
// interpretable by the Google Charts API.
func transform(stats set, omit omissions) gcDataTables {
	data := make(gcDataTables)

	for bname, stats := range stats {
		values := make(map[string][]interface{})
	L:
		for _, s := range stats {
			if _, ok := values[s.Name]; !ok {
				values[s.Name] = append(values[s.Name], s.Name)
			}
			switch s.Unit {
			case "MB/s":
				if omit.bandwidth {
					continue L
				}
			case "B/op": // total memory allocated
				if omit.mem {
					continue L
				}
			case "allocs/op": // number of allocs
				if omit.allocs {
					continue L
				}
			}
			values[s.Name] = append(values[s.Name], s.Value)
		}
		hdr := []interface{}{"Name", "ns/op"}
		if !omit.bandwidth {
			hdr = append(hdr, "MB/s")
		}
		if !omit.mem {
			hdr = append(hdr, "B/op")
		}
		if !omit.allocs {
			hdr = append(hdr, "allocs/op")
		}
		data[bname] = append(data[bname], hdr)

		for _, v := range values {
			data[bname] = append(data[bname], v)
		}
	}
	return data
}
