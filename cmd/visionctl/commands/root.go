package commands

import (
	"github.com/spf13/cobra"

	"github.com/gabo-gil-playground/multi-content-recognition/internal/client"
)

var (
	backendURL string
	api        *client.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:   "visionctl",
		Short: "Submit photos for privacy-filtered object recognition",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			api = client.New(backendURL)
		},
	}

	root.PersistentFlags().StringVar(&backendURL, "backend", "http://localhost:4000", "recognition backend base URL")

	root.AddCommand(recognizeCmd())
	return root.Execute()
}
