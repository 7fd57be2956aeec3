package main

import (
	"github.com/spf13/cobra"

	"sar2tools/internal/scenery"
)

var (
	replayInput  string
	replayFormat string
	replayOut    string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a placement log",
	Long:  "replay re-emits the records of a JSONL placement log as scenery text or JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, cleanup, err := newWriter(replayFormat, replayOut, "")
		if err != nil {
			return err
		}
		defer cleanup()
		if err := scenery.ReplayFile(replayInput, w); err != nil {
			return err
		}
		return cleanup()
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to placement log file")
	replayCmd.Flags().StringVar(&replayFormat, "format", "text", "Output format (text or json)")
	replayCmd.Flags().StringVar(&replayOut, "out", "", "Write to this file instead of STDOUT")
	replayCmd.MarkFlagRequired("input")
}
