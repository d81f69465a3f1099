package cli

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/rahalio/data-extraction/internal/pkg/converter"
)

const convertShortDescription = `Convert JSON company records to CSV`
const convertLongDescription = `Command "convert"

Convert LinkedIn Sales Navigator company records
from JSON files into a single flat CSV table.

Nested fields are flattened by a fixed extraction schema,
free-text fields are normalized to a single line and the
public profile URL is derived from the entity URN.
`

func convertCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: convertShortDescription,
		Long:  convertLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.ValidateOptions([]string{"InputDir", "Pattern"}); err != nil {
				return err
			}

			logger := root.logger
			outputPath := root.outputPath("companies.csv")

			inputs, err := root.discoverInputFiles(outputPath)
			if err != nil {
				return err
			}
			logger.Infof("Found %d files to process.", len(inputs))

			result, err := converter.New(root.fs).
				WithProgress(root.progressBar(len(inputs), "Processing files")).
				Convert(inputs, outputPath)
			if err != nil {
				return err
			}

			logConvertResult(root, result)
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringP("input-dir", "i", ".", "directory with JSON export files")
	cmd.Flags().StringP("output", "o", "companies.csv", "output file name")
	cmd.Flags().StringP("pattern", "p", "*.json", "glob pattern for input files")
	return cmd
}

// progressBar returns a progress callback rendering to stderr.
// Disabled in verbose mode, the bar would interleave with log messages.
func (root *rootCommand) progressBar(total int, description string) converter.ProgressFunc {
	if root.options.Verbose {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(root.cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return func(done, total int) {
		_ = bar.Set(done)
	}
}

func logConvertResult(root *rootCommand, result *converter.Result) {
	logger := root.logger
	for _, loadErr := range result.Errors {
		logger.Warnf("Skipped \"%s\": %s", loadErr.Path, loadErr.Reason)
	}

	logger.Infof("Wrote %d rows to \"%s\".", result.RowsWritten, result.OutputPath)
	if result.Duplicates > 0 {
		logger.Infof("Skipped %d duplicate records.", result.Duplicates)
	}
	if result.FilesFailed > 0 {
		logger.Warnf("Failed to process %d files.", result.FilesFailed)
	}
}
