package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixelreel/pixelreel"
)

func newDecodeCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Dislodge a file previously etched into a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPath == "" {
				inPath = promptString("Path to the video to read")
			}
			if outPath == "" {
				outPath = promptString("Path to write the recovered file")
			}

			if _, err := os.Stat(outPath); err == nil {
				if !confirm(outPath + " already exists, overwrite?") {
					return nil
				}
			}

			demux, err := pixelreel.OpenVideoDemuxer(inPath)
			if err != nil {
				return err
			}
			payload, err := pixelreel.Decode(demux)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, payload, 0o644); err != nil {
				return err
			}
			log.Info("decode: done", "out", outPath, "bytes", len(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to the video to read")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the recovered file")

	return cmd
}
