// Command paritydiff compares a candidate record stream against a
// reference produced by paritydump.
//
// Usage:
//
//	paritydiff [-eps 1e-4] [-max 200] reference.txt candidate.txt
//
// It exits 0 when every field matches and 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/textparity/record"
)

func main() {
	var (
		eps  = flag.Float64("eps", record.DefaultEpsilon, "float tolerance")
		show = flag.Int("max", 200, "maximum number of mismatches to print")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		pterm.Error.Println("usage: paritydiff [-eps E] [-max N] reference candidate")
		os.Exit(2)
	}

	ref, err := load(flag.Arg(0))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	cand, err := load(flag.Arg(1))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	mismatches := record.Compare(ref, cand, *eps)
	if len(mismatches) == 0 {
		pterm.Info.Printf("parity diff: OK (%d cases, eps=%g)\n", ref.Len(), *eps)
		return
	}

	pterm.Error.Println("parity diff: FOUND mismatches")
	report(mismatches, *show)
	os.Exit(1)
}

func load(path string) (*record.Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := record.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func report(mismatches []record.Mismatch, limit int) {
	n := min(len(mismatches), limit)
	data := [][]string{{"#", "case", "tag", "field", "detail"}}
	for i, m := range mismatches[:n] {
		data = append(data, []string{strconv.Itoa(i), m.Case, m.Tag, m.Field, m.String()})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
	if len(mismatches) > n {
		pterm.Printf("... (%d more)\n", len(mismatches)-n)
	}
}
