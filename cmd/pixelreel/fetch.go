package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixelreel/pixelreel/internal/fetch"
)

func newFetchCmd() *cobra.Command {
	var url, outPath string

	cmd := &cobra.Command{
		Use:   "fetch-video",
		Short: "Download a remote video for later decode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = promptString("Video URL")
			}
			if outPath == "" {
				outPath = "input.mp4"
			}
			if err := fetch.Download(url, outPath); err != nil {
				return err
			}
			log.Info("fetch-video: done", "out", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "remote video URL")
	cmd.Flags().StringVar(&outPath, "out", "", "destination path")

	return cmd
}
