package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
	"github.com/Mochibw/PrimerPioneer/internal/ligate"
	"github.com/Mochibw/PrimerPioneer/internal/seqio"
	"github.com/Mochibw/PrimerPioneer/logger"
)

var (
	ligateIn      []string
	ligateDephos  []string
	ligateMax     int
	ligateTimeout time.Duration
	ligateRepair  bool
	ligateOut     string
)

// ligateCmd searches the input fragments for valid circular assemblies.
var ligateCmd = &cobra.Command{
	Use:   "ligate",
	Short: "Simulate ligation/circularization of fragments",
	Long: `Searches every subset and ordering of the input fragments for circular
assemblies whose junction ends are compatible. The search is exhaustive and
grows factorially with the fragment count, so it is bounded by
--max-fragments and --timeout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(ligateIn) == 0 {
			return fmt.Errorf("at least one --in fragment file is required")
		}

		var frags []dna.Fragment
		for _, path := range ligateIn {
			fs, err := seqio.ReadFragments(path)
			if err != nil {
				return err
			}
			frags = append(frags, fs...)
		}

		if ligateRepair {
			for i := range frags {
				repaired, msg := ligate.EndRepair(frags[i])
				logger.Debug(msg, zap.String("fragment", frags[i].ID))
				frags[i] = repaired
			}
		}

		maxFrags := ligateMax
		if !cmd.Flags().Changed("max-fragments") {
			maxFrags = conf.Ligation.MaxFragments
		}
		timeout := ligateTimeout
		if !cmd.Flags().Changed("timeout") {
			timeout = conf.Ligation.Timeout
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := ligate.Circularize(ctx, frags, ligate.Options{
			Dephosphorylated: ligateDephos,
			MaxFragments:     maxFrags,
		})
		if err != nil {
			return err
		}

		for _, msg := range res.Messages {
			logger.Info(msg)
		}
		for _, p := range res.Products {
			logger.Info("assembly candidate",
				zap.Int("fragments", p.FragmentCount),
				zap.Int("length", p.Record.Length))
		}
		if ligateOut != "" {
			if err := seqio.WriteJSON(ligateOut, res); err != nil {
				return err
			}
			logger.Info("wrote ligation result", zap.String("path", ligateOut))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ligateCmd)

	ligateCmd.Flags().StringSliceVarP(&ligateIn, "in", "i", nil, "fragment JSON file(s): digest results, fragment lists or single fragments")
	ligateCmd.Flags().StringSliceVar(&ligateDephos, "dephos", nil, "dephosphorylated end ids, '<fragment id>:5' or '<fragment id>:3'")
	ligateCmd.Flags().IntVar(&ligateMax, "max-fragments", ligate.DefaultMaxFragments, "cap on the number of input fragments")
	ligateCmd.Flags().DurationVar(&ligateTimeout, "timeout", 30*time.Second, "abort the search after this long")
	ligateCmd.Flags().BoolVar(&ligateRepair, "end-repair", false, "blunt all sticky ends before ligation")
	ligateCmd.Flags().StringVarP(&ligateOut, "out", "o", "", "output JSON file")
}
