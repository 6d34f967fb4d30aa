package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/martin-hale/calcstuff-go/lib"
)

func main() {
	debug := flag.Bool("debug", false, "dump token and postfix sequences to stderr")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ok := true
	if args := flag.Args(); len(args) > 0 {
		for _, expr := range args {
			ok = run(log, expr, *debug) && ok
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			ok = run(log, line, *debug) && ok
		}
		if err := scanner.Err(); err != nil {
			log.WithError(err).Error("reading stdin")
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func run(log *logrus.Logger, expr string, debug bool) bool {
	if debug {
		dumpStages(log, expr)
	}

	result, err := lib.Calculate(expr)
	if err != nil {
		log.WithField("expression", expr).Error(err)
		return false
	}

	fmt.Printf("%s = %v\n", expr, result)
	return true
}

func dumpStages(log *logrus.Logger, expr string) {
	tokens, err := lib.Tokenize(expr)
	if err != nil {
		return
	}
	log.Debug("tokens:")
	spew.Fdump(os.Stderr, tokens)

	postfix, err := lib.ToPostfix(tokens)
	if err != nil {
		return
	}
	log.Debug("postfix:")
	spew.Fdump(os.Stderr, postfix)
}
