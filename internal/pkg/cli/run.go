package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rahalio/data-extraction/internal/pkg/workflow"
)

const runShortDescription = `Run the full export workflow`
const runLongDescription = `Command "run"

Complete workflow for processing Sales Navigator exports:

1. Combine all JSON export files into one document.
2. Convert the combined data to a CSV table.

The intermediate combined JSON file is removed at the end,
use the "--keep-combined" flag to preserve it.
`

func runCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: runShortDescription,
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.ValidateOptions([]string{"InputDir", "Pattern"}); err != nil {
				return err
			}

			logger := root.logger
			outputDir := root.options.Output
			if outputDir == "" {
				outputDir = root.inputDir()
			} else if !filepath.IsAbs(outputDir) {
				outputDir = filepath.Join(root.options.WorkingDirectory, outputDir)
			}
			if err := root.fs.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("cannot create output directory \"%s\": %s", outputDir, err)
			}

			inputs, err := root.discoverInputFiles(workflow.CombinedFileName, workflow.DefaultCSVFileName)
			if err != nil {
				return err
			}
			logger.Infof("Found %d JSON files to process.", len(inputs))

			result, err := workflow.New(root.fs).Run(workflow.Options{
				InputPaths:   inputs,
				OutputDir:    outputDir,
				KeepCombined: root.options.KeepCombined,
				Progress:     root.progressBar(1, "Converting"),
			})
			if err != nil {
				return err
			}

			for _, loadErr := range result.Combine.Errors {
				logger.Warnf("Skipped \"%s\": %s", loadErr.Path, loadErr.Reason)
			}
			logger.Infof("Combined %d files, %d records.", result.Combine.FilesProcessed, result.Combine.TotalRecords)
			logConvertResult(root, result.Convert)
			if root.options.KeepCombined {
				logger.Infof("Combined JSON kept at \"%s\".", result.Combine.OutputPath)
			}
			logger.Infof("Output CSV: \"%s\".", result.CSVPath)
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringP("input-dir", "i", ".", "directory with JSON export files")
	cmd.Flags().StringP("output", "o", "", "directory for output files (default: input directory)")
	cmd.Flags().StringP("pattern", "p", "*.json", "glob pattern for input files")
	cmd.Flags().Bool("keep-combined", false, "keep the intermediate combined JSON file")
	return cmd
}
