// Package utils exposes the ambient helpers shared by the CLI and the scanner.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper; LoggerFactory builds zap loggers bound
// to a caller-supplied writer; FlushingWriter serializes concurrent writes.
package utils
