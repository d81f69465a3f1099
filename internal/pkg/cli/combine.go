package cli

import (
	"github.com/spf13/cobra"

	"github.com/rahalio/data-extraction/internal/pkg/combiner"
)

const combineShortDescription = `Combine multiple JSON files into one`
const combineLongDescription = `Command "combine"

Combine multiple JSON export files from a directory
into a single JSON document.

Files with a top-level array are merged element by element,
files with a top-level object are appended as one record.
Files that cannot be parsed are skipped and reported.
`

func combineCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: combineShortDescription,
		Long:  combineLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.ValidateOptions([]string{"InputDir", "Pattern"}); err != nil {
				return err
			}

			logger := root.logger
			outputPath := root.outputPath("combined.json")

			inputs, err := root.discoverInputFiles(outputPath)
			if err != nil {
				return err
			}
			logger.Infof("Found %d JSON files to combine.", len(inputs))

			result, err := combiner.New(root.fs).Combine(inputs, outputPath)
			if err != nil {
				return err
			}

			for _, loadErr := range result.Errors {
				logger.Warnf("Skipped \"%s\": %s", loadErr.Path, loadErr.Reason)
			}

			logger.Infof("Combined %d files into \"%s\".", result.FilesProcessed, result.OutputPath)
			logger.Infof("Total records: %d.", result.TotalRecords)
			if result.FilesSkipped > 0 {
				logger.Warnf("Skipped %d files due to errors.", result.FilesSkipped)
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringP("input-dir", "i", ".", "directory with JSON export files")
	cmd.Flags().StringP("output", "o", "combined.json", "output file name")
	cmd.Flags().StringP("pattern", "p", "*.json", "glob pattern for input files")
	return cmd
}
