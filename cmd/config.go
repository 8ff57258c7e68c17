package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "gooze.dev/pkg/reconmut/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "reconmut"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName      = "root"
	outputFlagName    = "output"
	mutationsFlagName = "mutations"
	excludeFlagName   = "exclude"
	catalogFlagName   = "catalog"
	noTUIFlagName     = "no-tui"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"
	strategyFlagName  = "strategy"
	parallelFlagName  = "parallel"
	dryRunFlagName    = "dry-run"
	shardFlagName     = "shard"
	runIDFlagName     = "run-id"

	excludeConfigKey  = "paths.exclude"
	includeConfigKey  = "paths.include"
	keywordsConfigKey = "paths.keywords"
	strategyConfigKey = "generate.strategy"
	parallelConfigKey = "generate.parallel"
	noTUIConfigKey    = "ui.no_tui"

	defaultOutput    = ".reconmut"
	defaultMutations = m.AllMutationsSelector
	defaultStrategy  = string(m.StrategyDeferred)
	defaultParallel  = 1

	envPrefix = "RECONMUT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".reconmut.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		slog.Debug("No config file loaded", "file", configFileName, "error", err)
	}
}

func setConfigDefaults() {
	rule := m.DefaultDiscoveryRule()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutput)
	viper.SetDefault(mutationsFlagName, defaultMutations)
	viper.SetDefault(catalogFlagName, "")
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(includeConfigKey, rule.Include)
	viper.SetDefault(keywordsConfigKey, rule.Keywords)
	viper.SetDefault(strategyConfigKey, defaultStrategy)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(noTUIConfigKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// discoveryRule builds the controller discovery rule from config.
func discoveryRule() m.DiscoveryRule {
	return m.DiscoveryRule{
		Include:  viper.GetStringSlice(includeConfigKey),
		Keywords: viper.GetStringSlice(keywordsConfigKey),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; verbose forces Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
