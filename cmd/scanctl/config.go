package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arloliu/go-iterscan/logger"
)

const (
	configBaseName   = "scanctl"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "SCANCTL"

	logFileFlagName  = "log-file"
	verboseFlagName  = "verbose"
	meshFlagName     = "mesh"
	stayFlagName     = "stay"
	quietFlagName    = "quiet"
	maxStepsFlagName = "max-steps"
	parallelFlagName = "parallel"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	runQuietKey      = "run.quiet"
	statsMaxStepsKey = "stats.max_steps"
	statsParallelKey = "stats.parallel"

	defaultLogFilename   = ".scanctl.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	defaultRunQuiet      = false
	defaultStatsMaxSteps = 100000
	defaultStatsParallel = 4
)

// configErr holds a failure to read the config file, reported when a command runs.
var configErr error

func init() {
	configErr = setupConfig(viper.GetViper())
}

// setupConfig registers defaults on v and reads the config file. A missing file is not an
// error.
func setupConfig(v *viper.Viper) error {
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	v.SetDefault(runQuietKey, defaultRunQuiet)
	v.SetDefault(statsMaxStepsKey, defaultStatsMaxSteps)
	v.SetDefault(statsParallelKey, defaultStatsParallel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read config %s: %w", configFileName, err)
	}

	return nil
}

// configureLogger replaces the global logger with one writing to a rotating log file.
//
// It logs at the configured level, or at Debug if verbose is true. The returned closer
// releases the log file.
func configureLogger(logPath string, verbose bool) io.Closer {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	level := logger.ParseLevel(viper.GetString(logLevelKey), logger.InfoLevel)
	if verbose {
		level = logger.DebugLevel
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	logger.SetLogger(logger.NewSlogWriter(logWriter, level, true))

	return logWriter
}
