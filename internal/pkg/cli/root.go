package cli

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rahalio/data-extraction/internal/pkg/log"
	"github.com/rahalio/data-extraction/internal/pkg/options"
	"github.com/rahalio/data-extraction/internal/pkg/version"
)

const description = `
Sales Navigator Export Tools

Process LinkedIn Sales Navigator JSON exports
from your local machine or CI pipeline.

Combine many export files into one JSON document,
or convert company records into a flat CSV table.
`

type rootCommand struct {
	cmd          *cobra.Command
	fs           afero.Fs           // filesystem abstraction
	options      *options.Options   // parsed flags and env variables
	start        time.Time          // cmd start time
	initialized  bool               // init method was called
	logFile      *os.File           // log file instance
	logFileClear bool               // is log file temporary? if yes, it will be removed at the end, if no error occurs
	logger       *zap.SugaredLogger // log to console and logFile
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer) *rootCommand {
	root := &rootCommand{
		fs:      afero.NewOsFs(),
		options: options.NewOptions(),
		start:   time.Now(),
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:          path.Base(os.Args[0]), // name of the binary
		Version:      version.Version(),
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)
	root.cmd.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	root.options.BindPersistentFlags(root.cmd.PersistentFlags())

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		combineCommand(root),
		convertCommand(root),
		runCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		// Init, it can be uninitialized, if error occurred before PersistentPreRun call
		_ = root.init(root.cmd)
		// Error is already printed by cobra to stderr writer
		return 1
	}
	return 0
}

func (root *rootCommand) GetCommandByName(name string) *cobra.Command {
	for _, cmd := range root.cmd.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func (root *rootCommand) ValidateOptions(required []string) error {
	if err := root.options.Validate(required); len(err) > 0 {
		root.logger.Warn("Invalid parameters:\n", err)
		return fmt.Errorf("invalid parameters, see output above")
	}
	return nil
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if err := recover(); err == nil {
		if root.logger != nil {
			root.logger.Debugf("Execution took %s.", time.Since(root.start))
		}
		if root.logFile != nil {
			if err = root.logFile.Close(); err != nil {
				panic(fmt.Errorf("cannot close log file \"%s\": %s", root.options.LogFilePath, err))
			}
		}

		// No error -> remove log file if temporary
		if root.logFileClear && len(root.options.LogFilePath) > 0 {
			if err = os.Remove(root.options.LogFilePath); err != nil {
				panic(fmt.Errorf("cannot remove temp log file \"%s\": %s", root.options.LogFilePath, err))
			}
		}
	} else {
		// Panic -> keep the log file and report where it is
		if root.logger != nil {
			root.logger.Errorf("Unexpected panic: %s", err)
		}
		fmt.Fprintf(root.cmd.ErrOrStderr(), "Unexpected panic: %s\n", err)
		if len(root.options.LogFilePath) > 0 {
			fmt.Fprintf(root.cmd.ErrOrStderr(), "Details can be found in the log file \"%s\".\n", root.options.LogFilePath)
		}
		if root.logFile != nil {
			_ = root.logFile.Close()
		}
		os.Exit(1)
	}
}

// init sets logger and options after flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return
	}

	// Run only once
	root.initialized = true

	// Logger must always be set up, even if there is a panic somewhere
	defer func() {
		if root.logger == nil {
			root.setupLogger()
		}
	}()

	// Load values from flags and envs
	warnings, err := root.options.Load(cmd.Flags())
	if err != nil {
		return err
	}

	// Setup logger and log options load warnings
	root.setupLogger()
	root.logDebugInfo()
	for _, warning := range warnings {
		root.logger.Warn(warning)
	}

	return nil
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	logFile, logFileErr := root.getLogFile()
	root.logger = log.NewLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), logFile, root.options.Verbose)
	root.logFile = logFile
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified log file and it cannot be opened
	if logFileErr != nil && !root.logFileClear {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) logDebugInfo() {
	// Version
	if _, err := log.ToDebugWriter(root.logger).WriteString(root.cmd.Version); err != nil {
		panic(err)
	}

	// Command
	root.logger.Debugf("Running command %v", os.Args)

	// Options
	root.logger.Debug(root.options.Dump())
}

// getLogFile returns the log file defined in the flags or creates a temp file.
func (root *rootCommand) getLogFile() (logFile *os.File, logFileErr error) {
	if len(root.options.LogFilePath) > 0 {
		root.logFileClear = false // log file defined by user will be preserved
	} else {
		// Generate a unique hash if multiple instances start simultaneously
		randomHash := ``
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			randomHash = fmt.Sprintf(`-%x`, randomBytes)
		}

		root.options.LogFilePath = filepath.Join(os.TempDir(), fmt.Sprintf("salesnav-%d%s.txt", time.Now().Unix(), randomHash))
		root.logFileClear = true // temp log file will be removed, it is preserved only in case of error
	}

	logFile, logFileErr = os.OpenFile(root.options.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if logFileErr != nil {
		root.options.LogFilePath = ""
	}
	return
}
