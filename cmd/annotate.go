package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mochibw/PrimerPioneer/internal/annotate"
	"github.com/Mochibw/PrimerPioneer/internal/seqio"
	"github.com/Mochibw/PrimerPioneer/logger"
)

var (
	annotateIn        string
	annotateOut       string
	annotateNoBuiltin bool
	annotatePatterns  []string
)

// annotateCmd scans a record for known motifs and writes the record back
// with the found features attached.
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Scan a record for restriction sites and other motifs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if annotateIn == "" {
			return fmt.Errorf("--in is required")
		}

		rec, err := seqio.ReadRecord(annotateIn)
		if err != nil {
			return err
		}

		opts := annotate.Options{ScanBuiltin: !annotateNoBuiltin}
		for _, raw := range annotatePatterns {
			p, err := parsePattern(raw)
			if err != nil {
				return err
			}
			opts.Custom = append(opts.Custom, p)
		}

		found, err := annotate.Scan(rec, opts)
		if err != nil {
			return err
		}
		logger.Info("scan complete",
			zap.String("record", rec.Name),
			zap.Int("features", len(found)))

		if annotateOut != "" {
			annotated := *rec
			annotated.Features = append(annotated.Features, found...)
			if err := seqio.WriteJSON(annotateOut, &annotated); err != nil {
				return err
			}
			logger.Info("wrote annotated record", zap.String("path", annotateOut))
		}
		return nil
	},
}

// parsePattern parses a --pattern value of the form name:type:SEQ.
func parsePattern(raw string) (annotate.Pattern, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return annotate.Pattern{}, fmt.Errorf("pattern %q must look like name:type:SEQ", raw)
	}
	return annotate.Pattern{Name: parts[0], Type: parts[1], Seq: parts[2]}, nil
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVarP(&annotateIn, "in", "i", "", "input record JSON file")
	annotateCmd.Flags().StringVarP(&annotateOut, "out", "o", "", "output JSON file for the annotated record")
	annotateCmd.Flags().BoolVar(&annotateNoBuiltin, "no-builtin", false, "skip the built-in motif table")
	annotateCmd.Flags().StringArrayVarP(&annotatePatterns, "pattern", "p", nil, "custom motif, name:type:SEQ (repeatable)")
}
