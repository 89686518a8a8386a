package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
	"github.com/Mochibw/PrimerPioneer/internal/seqio"
	"github.com/Mochibw/PrimerPioneer/logger"
)

var annealOut string

// annealCmd anneals two complementary oligos into a blunt duplex record.
var annealCmd = &cobra.Command{
	Use:   "anneal <oligo1> <oligo2>",
	Short: "Anneal two complementary oligos into a double-stranded record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, msg, err := dna.AnnealOligos(args[0], args[1])
		if err != nil {
			return err
		}

		logger.Info(msg)
		if rec == nil {
			return nil
		}
		if annealOut != "" {
			if err := seqio.WriteJSON(annealOut, rec); err != nil {
				return err
			}
			logger.Info("wrote duplex record", zap.String("path", annealOut))
		} else {
			fmt.Printf("%s\t%d bp\n", rec.Seq, rec.Length)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(annealCmd)

	annealCmd.Flags().StringVarP(&annealOut, "out", "o", "", "output JSON file")
}
