package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TudorHulban/appearance"
)

func (a *App) computeCmd() *cobra.Command {
	var showSegments bool

	cmd := &cobra.Command{
		Use:   "compute [lesson.json]",
		Short: "Compute connected time for one lesson",
		Long: `Compute reads one lesson record and prints the time pupil and tutor were
both connected inside the lesson window. Reads stdin when no file is given.
The input must hold exactly one lesson record.

Example:
  echo '{"lesson":[0,100],"tutor":[0,50,60,100],"pupil":[10,70]}' | appearance compute`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()

			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening lesson file: %w", err)
				}
				defer f.Close()

				in = f
			}

			lesson, err := readLesson(in)
			if err != nil {
				return err
			}

			connections, err := lesson.Connections()
			if err != nil {
				return err
			}

			duration := appearance.SumDurations(connections)

			a.logger.Debug(
				"lesson computed",

				zap.Stringer("window", lesson.Window),
				zap.Int("segments", len(connections)),
				zap.Int64("duration", duration),
			)

			if showSegments {
				for _, connection := range connections {
					fmt.Fprintln(a.out, colorMuted.Sprint(connection.String()))
				}
			}

			fmt.Fprintln(a.out, duration)

			return nil
		},
	}

	cmd.Flags().BoolVar(&showSegments, "segments", false, "Also print merged connection segments")

	return cmd
}

func readLesson(r io.Reader) (*appearance.Lesson, error) {
	var lesson appearance.Lesson

	decoder := json.NewDecoder(r)

	if err := decoder.Decode(&lesson); err != nil {
		return nil, fmt.Errorf("decoding lesson: %w", err)
	}

	if decoder.More() {
		return nil, errors.New("decoding lesson: unexpected data after lesson record")
	}

	return &lesson, nil
}
