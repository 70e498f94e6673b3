package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixelreel/pixelreel"
)

func newEncodeCmd() *cobra.Command {
	var (
		presetName     string
		resolutionName string
		modeName       string
		block          int
		workers        int
		fps            float64
		inPath         string
		outPath        string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Etch a file into a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, settings := pixelreel.Binary, pixelreel.DefaultSettings()
			if p, ok := presets[presetName]; ok {
				mode, settings = p.mode, p.settings
			} else if resolutionName != "" {
				settings.Width, settings.Height = resolutionOrDefault(resolutionName)
			}

			switch modeName {
			case "color":
				mode = pixelreel.Color
			case "binary":
				mode = pixelreel.Binary
			}
			if block > 0 {
				settings.Block = block
			}
			if workers > 0 {
				settings.Workers = workers
			}
			if fps > 0 {
				settings.FPS = fps
			}

			if inPath == "" {
				inPath = promptString("Path to the file to embed")
			}
			if outPath == "" {
				outPath = "output.avi"
			}

			payload, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}

			mux := pixelreel.NewVideoMuxer(outPath, settings.FPS)
			if err := pixelreel.Encode(payload, mode, settings, mux); err != nil {
				return err
			}
			log.Info("encode: done", "mode", mode, "out", outPath, "bytes", len(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "optimal|paranoid|max-efficiency")
	cmd.Flags().StringVar(&resolutionName, "resolution", "", "144p|240p|360p|480p|720p")
	cmd.Flags().StringVar(&modeName, "mode", "", "color|binary")
	cmd.Flags().IntVar(&block, "block-size", 0, "payload block side length in pixels")
	cmd.Flags().IntVar(&workers, "threads", 0, "parallel encoder worker count")
	cmd.Flags().Float64Var(&fps, "fps", 0, "output frame rate")
	cmd.Flags().StringVar(&inPath, "in", "", "path to the file to embed")
	cmd.Flags().StringVar(&outPath, "out", "", "output video path")

	return cmd
}
