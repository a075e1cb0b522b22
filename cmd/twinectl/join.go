package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/XOSplicer/twine/twine"
)

var (
	joinDec      []int64
	joinHex      []string
	joinSep      string
	joinPrealloc bool
)

var joinCmd = &cobra.Command{
	Use:   "join [fragments...]",
	Short: "Build a twine from fragments and render it",
	Long: `Builds a single twine out of the given string fragments plus any
--dec and --hex numeric leaves, prints its shape and estimated capacity,
then renders it once.

Example:

  twinectl join identifier- --hex 42
  twinectl join --sep ", " alpha beta gamma --prealloc`,
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().Int64SliceVar(&joinDec, "dec", nil, "Append a decimal integer leaf")
	joinCmd.Flags().
		StringSliceVar(&joinHex, "hex", nil, "Append a hex integer leaf (lower-case, no prefix)")
	joinCmd.Flags().StringVar(&joinSep, "sep", "", "Separator inserted between fragments")
	joinCmd.Flags().
		BoolVar(&joinPrealloc, "prealloc", false, "Render with a pre-sized buffer")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	// Leaf storage must outlive the twines borrowing from it.
	decVals := make([]int64, len(joinDec))
	copy(decVals, joinDec)
	hexVals := make([]uint64, 0, len(joinHex))
	for _, h := range joinHex {
		v, err := strconv.ParseUint(h, 16, 64)
		if err != nil {
			return fmt.Errorf("parse hex value %q: %w", h, err)
		}
		hexVals = append(hexVals, v)
	}

	frags := make([]twine.Twine, 0, 2*(len(args)+len(decVals)+len(hexVals)))
	sep := twine.FromString(joinSep)
	appendFrag := func(t twine.Twine) {
		if len(frags) > 0 {
			frags = append(frags, sep)
		}
		frags = append(frags, t)
	}

	for _, a := range args {
		appendFrag(twine.FromString(a))
	}
	for i := range decVals {
		appendFrag(twine.DecI64(&decVals[i]))
	}
	for i := range hexVals {
		appendFrag(twine.HexU64(&hexVals[i]))
	}

	result := foldConcat(frags)

	printVerbose("shape: nullary=%v unary=%v binary=%v\n",
		result.IsNullary(), result.IsUnary(), result.IsBinary())
	printVerbose("estimated capacity: %d\n", result.EstimatedCapacity())
	printVerbose("trivially empty: %v, exactly empty: %v\n",
		result.IsTriviallyEmpty(), result.IsEmpty())

	var rendered string
	if joinPrealloc {
		rendered = result.StringPrealloc()
	} else {
		rendered = result.String()
	}
	printInfo("%s\n", rendered)
	return nil
}

// foldConcat left-folds the fragments into one twine. Every intermediate
// value is kept in its own slot: concatenation borrows its operands, so a
// partial result must never be overwritten in place.
func foldConcat(frags []twine.Twine) *twine.Twine {
	if len(frags) == 0 {
		e := twine.Empty()
		return &e
	}
	acc := make([]twine.Twine, 1, len(frags))
	acc[0] = frags[0]
	for i := 1; i < len(frags); i++ {
		acc = append(acc, twine.Concat(&acc[len(acc)-1], &frags[i]))
	}
	return &acc[len(acc)-1]
}
