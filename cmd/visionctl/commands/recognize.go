package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabo-gil-playground/multi-content-recognition/internal/client"
)

func recognizeCmd() *cobra.Command {
	var maxDimension int

	cmd := &cobra.Command{
		Use:   "recognize <image-path>",
		Short: "Resize a photo and print its recognized object list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			jpeg, err := client.Resize(data, maxDimension)
			if err != nil {
				if errors.Is(err, client.ErrInvalidDimensions) {
					return fmt.Errorf("cannot read %s as an image: %w", args[0], err)
				}
				return err
			}

			text, err := api.Submit(cmd.Context(), jpeg)
			if err != nil {
				// Rendering lives here; the client only classifies.
				var srvErr *client.ServerError
				var netErr *client.TransportError
				switch {
				case errors.As(err, &srvErr):
					return fmt.Errorf("server rejected the image: %s", srvErr.Message)
				case errors.As(err, &netErr):
					return fmt.Errorf("could not reach %s: %v", backendURL, netErr.Err)
				case errors.Is(err, client.ErrEmptyResponse):
					return fmt.Errorf("the image produced no description")
				default:
					return err
				}
			}

			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDimension, "max-dimension", client.DefaultMaxDimension, "longest image side after resizing")
	return cmd
}
