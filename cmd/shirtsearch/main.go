package main

import (
	"fmt"
	"os"
)

const usage = `usage: shirtsearch <command> [flags]

commands:
  search   filter the catalog and print facet counts
  totals   print unfiltered per-size and per-color totals
  bench    run concurrent random searches and report metrics
  export   write the catalog as CSV
  version  print build information (-format json for machine output)`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "search":
		err = runSearch(args, os.Stdout)
	case "totals":
		err = runTotals(args, os.Stdout)
	case "bench":
		err = runBench(args, os.Stdout)
	case "export":
		err = runExport(args, os.Stdout)
	case "version", "--version", "-v":
		err = runVersion(args, os.Stdout)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", cmd, err)
		os.Exit(1)
	}
}
