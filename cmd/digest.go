package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Mochibw/PrimerPioneer/internal/digest"
	"github.com/Mochibw/PrimerPioneer/internal/seqio"
	"github.com/Mochibw/PrimerPioneer/logger"
)

var (
	digestIn      []string
	digestEnzymes []string
	digestOut     string
	digestKeep    []int
)

// digestCmd digests one or more records with a set of enzymes. Multiple
// input records are digested in parallel.
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Cut sequence records with restriction enzymes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(digestIn) == 0 {
			return fmt.Errorf("at least one --in record is required")
		}
		if len(digestEnzymes) == 0 {
			return fmt.Errorf("at least one --enzyme is required")
		}

		var mu sync.Mutex
		results := map[string]*digest.Result{}

		var g errgroup.Group
		for _, path := range digestIn {
			path := path
			g.Go(func() error {
				rec, err := seqio.ReadRecord(path)
				if err != nil {
					return err
				}
				res, err := digest.Digest(rec, digestEnzymes, enzymeDB)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if cmd.Flags().Changed("keep") {
					res = digest.SelectFragments(res, digestKeep)
				}
				mu.Lock()
				results[path] = res
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, path := range digestIn {
			res := results[path]
			for _, msg := range res.Info {
				logger.Warn(msg, zap.String("record", path))
			}
			logger.Info("digestion complete",
				zap.String("record", path),
				zap.Strings("enzymes", res.Enzymes),
				zap.Int("cuts", len(res.Cuts)),
				zap.Int("fragments", len(res.Fragments)))

			out := digestOutPath(path)
			if err := seqio.WriteJSON(out, res); err != nil {
				return err
			}
			logger.Info("wrote digest result", zap.String("path", out))
		}
		return nil
	},
}

// digestOutPath places each result next to its input, or under --out when
// one was given.
func digestOutPath(in string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".digest.json"
	if digestOut == "" {
		return filepath.Join(filepath.Dir(in), base)
	}
	return filepath.Join(digestOut, base)
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringSliceVarP(&digestIn, "in", "i", nil, "input record JSON file(s)")
	digestCmd.Flags().StringSliceVarP(&digestEnzymes, "enzyme", "e", nil, "enzyme name(s) to cut with")
	digestCmd.Flags().StringVarP(&digestOut, "out", "o", "", "output directory (default: next to each input)")
	digestCmd.Flags().IntSliceVarP(&digestKeep, "keep", "k", nil, "0-based fragment indices to keep (gel purification)")
}
