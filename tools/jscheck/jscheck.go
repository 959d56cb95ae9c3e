package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/wI2L/jscalar"
)

var (
	flagStrictExp      = flag.Bool("strict-exp", false, "require digits after an exponent marker")
	flagRejectOverflow = flag.Bool("reject-overflow", false, "reject numbers that overflow a float64")
	flagQuiet          = flag.Bool("q", false, "only report lines that fail to parse")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jscheck [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Each input line is parsed as a JSON text. With no file, stdin is read.\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	flag.Usage = usage
	flag.Parse()

	var opts []jscalar.Option
	if *flagStrictExp {
		opts = append(opts, jscalar.StrictExponent())
	}
	if *flagRejectOverflow {
		opts = append(opts, jscalar.RejectOverflow())
	}
	c := checker{
		opts:  opts,
		quiet: *flagQuiet,
		out:   bufio.NewWriter(os.Stdout),
	}
	var (
		failed int
		err    error
	)
	if flag.NArg() == 0 {
		failed, err = c.check("<stdin>", os.Stdin)
	} else {
		for _, name := range flag.Args() {
			var n int
			if n, err = c.checkFile(name); err != nil {
				break
			}
			failed += n
		}
	}
	if ferr := c.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		level.Error(logger).Log("msg", "check aborted", "err", err)
		os.Exit(2)
	}
	if failed != 0 {
		level.Warn(logger).Log("msg", "invalid lines found", "count", failed)
		os.Exit(1)
	}
}

type checker struct {
	opts  []jscalar.Option
	quiet bool
	out   *bufio.Writer
}

func (c *checker) checkFile(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, errors.Wrap(err, "opening input")
	}
	defer f.Close()

	return c.check(name, f)
}

// check parses every line of r and writes one
// report line per input line. It returns the
// number of lines that were rejected.
func (c *checker) check(name string, r io.Reader) (int, error) {
	var (
		failed int
		scanr  = bufio.NewScanner(r)
	)
	for line := 1; scanr.Scan(); line++ {
		v, err := jscalar.ParseOpts(scanr.Text(), c.opts...)
		if err != nil {
			failed++
			fmt.Fprintf(c.out, "%s:%d: %s\n", name, line, jscalar.ResultOf(err))
			continue
		}
		if !c.quiet {
			fmt.Fprintf(c.out, "%s:%d: ok %s %s\n", name, line, v.Kind(), v)
		}
	}
	if err := scanr.Err(); err != nil {
		return failed, errors.Wrapf(err, "reading %s", name)
	}
	return failed, nil
}
