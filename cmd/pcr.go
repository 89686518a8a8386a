package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mochibw/PrimerPioneer/internal/pcr"
	"github.com/Mochibw/PrimerPioneer/internal/seqio"
	"github.com/Mochibw/PrimerPioneer/logger"
)

var (
	pcrIn        string
	pcrForward   string
	pcrReverse   string
	pcrMinAnneal int
	pcrOut       string
)

// pcrCmd amplifies a template record with a primer pair.
var pcrCmd = &cobra.Command{
	Use:   "pcr",
	Short: "Simulate PCR amplification of a template record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pcrIn == "" || pcrForward == "" || pcrReverse == "" {
			return fmt.Errorf("--in, --fwd and --rev are all required")
		}

		template, err := seqio.ReadRecord(pcrIn)
		if err != nil {
			return err
		}

		minAnneal := pcrMinAnneal
		if !cmd.Flags().Changed("min-anneal") {
			minAnneal = conf.PCR.MinAnnealLen
		}

		res, err := pcr.Simulate(template, pcrForward, pcrReverse, minAnneal)
		if err != nil {
			return err
		}

		logger.Info(res.Message, zap.Int("amplicons", len(res.Amplicons)))
		if pcrOut != "" {
			if err := seqio.WriteJSON(pcrOut, res); err != nil {
				return err
			}
			logger.Info("wrote PCR result", zap.String("path", pcrOut))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pcrCmd)

	pcrCmd.Flags().StringVarP(&pcrIn, "in", "i", "", "template record JSON file")
	pcrCmd.Flags().StringVarP(&pcrForward, "fwd", "f", "", "forward primer sequence")
	pcrCmd.Flags().StringVarP(&pcrReverse, "rev", "r", "", "reverse primer sequence")
	pcrCmd.Flags().IntVar(&pcrMinAnneal, "min-anneal", pcr.DefaultMinAnnealLen, "minimum annealing-core length")
	pcrCmd.Flags().StringVarP(&pcrOut, "out", "o", "", "output JSON file")
}
