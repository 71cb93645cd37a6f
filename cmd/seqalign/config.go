package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqalign/align"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "seqalign"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	matchFlagName     = "match"
	mismatchFlagName  = "mismatch"
	gapFlagName       = "gap"
	modeFlagName      = "mode"
	formatFlagName    = "format"
	widthFlagName     = "width"
	matrixFlagName    = "matrix"
	colorFlagName     = "color"
	parallelFlagName  = "parallel"
	addrFlagName      = "addr"
	maxLengthFlagName = "max-length"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"
	fileAFlagName     = "file-a"
	fileBFlagName     = "file-b"
	uppercaseFlagName = "uppercase"

	matchKey     = "scoring.match"
	mismatchKey  = "scoring.mismatch"
	gapKey       = "scoring.gap"
	modeKey      = "scoring.mode"
	formatKey    = "output.format"
	widthKey     = "output.width"
	matrixKey    = "output.matrix"
	parallelKey  = "batch.parallel"
	addrKey      = "server.addr"
	maxLengthKey = "server.max_sequence_length"

	defaultFormat    = "text"
	defaultWidth     = 60
	defaultMatrix    = false
	defaultAddr      = ":8080"
	defaultMaxLength = 10_000

	envPrefix = "SEQALIGN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".seqalign.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds a failure to load seqalign.yaml; every command reports it
// before running.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	configErr = readConfigFile()
}

// readConfigFile loads seqalign.yaml. A missing file is not an error; an
// unreadable or malformed one is.
func readConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("config %s: %w", viper.ConfigFileUsed(), err)
}

func setDefaults() {
	def := align.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(matchKey, def.Match)
	viper.SetDefault(mismatchKey, def.Mismatch)
	viper.SetDefault(gapKey, def.Gap)
	viper.SetDefault(modeKey, string(def.Mode))
	viper.SetDefault(formatKey, defaultFormat)
	viper.SetDefault(widthKey, defaultWidth)
	viper.SetDefault(matrixKey, defaultMatrix)
	viper.SetDefault(parallelKey, runtime.NumCPU())
	viper.SetDefault(addrKey, defaultAddr)
	viper.SetDefault(maxLengthKey, defaultMaxLength)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// scoringFromConfig reads the scoring.* keys, already merged from flags,
// environment and seqalign.yaml.
func scoringFromConfig() (align.Config, error) {
	mode, err := align.ParseMode(viper.GetString(modeKey))
	if err != nil {
		return align.Config{}, fmt.Errorf("config %s: %w", modeKey, err)
	}

	return align.Config{
		Match:    viper.GetInt64(matchKey),
		Mismatch: viper.GetInt64(mismatchKey),
		Gap:      viper.GetInt64(gapKey),
		Mode:     mode,
	}, nil
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

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotating log file.
//
// It logs at log.level (Info unless configured); verbose forces Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
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
