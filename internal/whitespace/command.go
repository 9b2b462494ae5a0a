package whitespace

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/trailspace/internal/execshell"
	"github.com/temirov/trailspace/internal/filesystem"
	"github.com/temirov/trailspace/internal/gitrepo"
	"github.com/temirov/trailspace/internal/ui"
)

const (
	commandNameConstant             = "check"
	commandShortDescriptionConstant = "Report tracked files containing lines that end in spaces or tabs"
	commandLongDescriptionConstant  = "check lists the files tracked at HEAD, skips ignored binary extensions, and prints the first line ending in spaces or tabs for every offending file. It exits 1 when violations are found and 2 when git cannot list the tracked files."
)

// CommandBuilder assembles the trailing whitespace check with configurable dependencies.
// Unset collaborators are replaced by git and filesystem backed defaults.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	WorkingDirectory             string
	GitExecutor                  gitrepo.GitExecutor
	Lister                       TrackedFileLister
	FileReader                   FileReader
	WorkerLimit                  int
}

// Build constructs the check subcommand.
func (builder *CommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.Run,
	}
}

// Run executes the check for the provided command, writing diagnostics to its error stream.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()

	lister, listerError := builder.resolveLister(logger)
	if listerError != nil {
		return listerError
	}

	service, serviceError := NewService(ServiceDependencies{
		Lister:      lister,
		Filter:      NewExtensionFilter(DefaultIgnoredExtensions),
		Scanner:     NewContentScanner(builder.resolveFileReader(), builder.WorkingDirectory),
		Reporter:    NewWriterReporter(command.ErrOrStderr()),
		Logger:      logger,
		WorkerLimit: builder.WorkerLimit,
	})
	if serviceError != nil {
		return serviceError
	}

	_, runError := service.Run(command.Context())
	return runError
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveLister(logger *zap.Logger) (TrackedFileLister, error) {
	if builder.Lister != nil {
		return builder.Lister, nil
	}

	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return nil, executorError
	}
	return gitrepo.NewTrackedFileLister(gitExecutor, builder.WorkingDirectory)
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	var eventObserver execshell.CommandEventObserver
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		eventObserver = ui.NewConsoleCommandEventLogger(logger)
	}
	return execshell.NewShellExecutorWithObserver(logger, execshell.NewOSCommandRunner(), eventObserver)
}

func (builder *CommandBuilder) resolveFileReader() FileReader {
	if builder.FileReader != nil {
		return builder.FileReader
	}
	return filesystem.OSFileSystem{}
}
