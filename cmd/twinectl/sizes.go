package main

import (
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/XOSplicer/twine/twine"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "Print the in-memory sizes of the core types",
	Long: `Prints unsafe.Sizeof for Twine and the primitives it is built
from. A Twine is six machine words regardless of which variant it holds,
the size of three string headers.`,
	Run: func(cmd *cobra.Command, args []string) {
		printInfo("sizeof(Twine)=%d\n", unsafe.Sizeof(twine.Twine{}))
		printInfo("sizeof(string)=%d\n", unsafe.Sizeof(""))
		printInfo("sizeof(uintptr)=%d\n", unsafe.Sizeof(uintptr(0)))
		printInfo("words per Twine=%d\n",
			unsafe.Sizeof(twine.Twine{})/unsafe.Sizeof(uintptr(0)))
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
