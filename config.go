package portfolio

import "github.com/goliatone/go-portfolio/internal/runtimeconfig"

var (
	ErrSourceDirsRequired     = runtimeconfig.ErrSourceDirsRequired
	ErrSourceDirEmpty         = runtimeconfig.ErrSourceDirEmpty
	ErrOutputPathRequired     = runtimeconfig.ErrOutputPathRequired
	ErrMarkdownExtension      = runtimeconfig.ErrMarkdownExtension
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid  = runtimeconfig.ErrCommandTimeoutInvalid
)

type (
	Config               = runtimeconfig.Config
	ContentConfig        = runtimeconfig.ContentConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	CommandsConfig       = runtimeconfig.CommandsConfig
)

// DefaultConfig returns the fixed build layout with console logging.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv returns DefaultConfig with logging overrides read from an
// optional .env file and the process environment.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	if err := runtimeconfig.LoadDotEnv(envFiles...); err != nil {
		return Config{}, err
	}
	return runtimeconfig.ApplyEnv(runtimeconfig.DefaultConfig(), nil), nil
}
