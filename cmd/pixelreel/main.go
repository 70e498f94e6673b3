// Command pixelreel etches arbitrary files into video streams and
// dislodges them back out again.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "pixelreel",
		Short: "Encode files as video and decode them back, bit-exact",
	}
	root.AddCommand(newEncodeCmd(), newFetchCmd(), newDecodeCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
