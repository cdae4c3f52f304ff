// Package config loads and validates the CLI configuration: defaults, an
// optional config file, STACKCHARSET_* environment variables and command
// flags, merged in that order of increasing precedence, producing a
// populated charset.Options plus the application logger.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stackvity/stack-charset/pkg/charset"
	"github.com/stackvity/stack-charset/pkg/charset/codec"
	"github.com/stackvity/stack-charset/pkg/charset/guesser"
)

const (
	// EnvPrefix is the prefix for environment variable overrides, e.g.
	// STACKCHARSET_MAXSAMPLESIZE=65536.
	EnvPrefix = "STACKCHARSET"
	// DefaultConfigName is the base name of the config file searched for in
	// the standard locations.
	DefaultConfigName = "stack-charset"
)

// LoadAndValidate loads configuration from all sources, validates the merged
// result, injects the default guesser and codec implementations, and sets up
// the logger. Returns the populated Options or an error.
func LoadAndValidate(cfgFile string, verbose bool, flags *pflag.FlagSet) (charset.Options, *slog.Logger, error) {
	var opts charset.Options
	v := viper.New()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			// No config file is fine when none was asked for.
			logger.Debug("no configuration file found, using defaults/env/flags")
		} else {
			logger.Error("error reading configuration file", slog.Any("error", err))
			return opts, logger, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		logger.Debug("using configuration file", slog.String("path", v.ConfigFileUsed()))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return opts, logger, err
		}
	}

	if err := v.Unmarshal(&opts); err != nil {
		logger.Error("failed to decode configuration", slog.Any("error", err))
		return opts, logger, fmt.Errorf("%w: %w", charset.ErrConfigValidation, err)
	}

	// Inject default capability implementations; the pipeline never wires
	// these from file or env.
	opts.Guesser = guesser.NewChardetGuesser()
	opts.Codec = codec.NewXTextCodec()
	opts.Hooks = charset.NoOpHooks{}
	opts.Logger = handler

	if err := opts.Validate(); err != nil {
		logger.Error("configuration validation failed", slog.Any("error", err))
		return opts, logger, err
	}

	return opts, logger, nil
}

// bindFlags maps CLI flag names onto viper keys so explicitly set flags win
// over file and env values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"maxSampleSize": "sample-size",
		"chunkSize":     "chunk-size",
	}
	for key, flagName := range bindings {
		if f := flags.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("%w: binding flag %q: %w", charset.ErrConfigValidation, flagName, err)
			}
		}
	}
	return nil
}

// setDefaults registers the documented default for every tunable so config
// files and env vars only need to name what they change.
func setDefaults(v *viper.Viper) {
	v.SetDefault("chunkSize", charset.DefaultChunkSize)
	v.SetDefault("maxSampleSize", charset.DefaultMaxSampleSize)

	v.SetDefault("utf16MinLen", charset.DefaultUTF16MinLen)
	v.SetDefault("utf16Window", charset.DefaultUTF16Window)
	v.SetDefault("utf16ThresholdDiv", charset.DefaultUTF16ThresholdDiv)

	v.SetDefault("macCyrillicUpperMin", charset.DefaultMacCyrillicUpperMin)
	v.SetDefault("macCyrillicLowerMax", charset.DefaultMacCyrillicLowerMax)
	v.SetDefault("arabicRangeMin", charset.DefaultArabicRangeMin)
	v.SetDefault("arabicUpperMax", charset.DefaultArabicUpperMax)
	v.SetDefault("turkishMarkerMin", charset.DefaultTurkishMarkerMin)

	v.SetDefault("arabicRatioMin", charset.DefaultArabicRatioMin)
	v.SetDefault("cyrillicRatioMin", charset.DefaultCyrillicRatioMin)
	v.SetDefault("cyrillicArabicMax", charset.DefaultCyrillicArabicMax)
	v.SetDefault("turkishLetterMin", charset.DefaultTurkishLetterMin)
	v.SetDefault("koreanRatioMin", charset.DefaultKoreanRatioMin)

	v.SetDefault("seedBonus", charset.DefaultSeedBonus)
	v.SetDefault("arabicBonus", charset.DefaultArabicBonus)
	v.SetDefault("turkishBonus", charset.DefaultTurkishBonus)
	v.SetDefault("koreanCp949Bonus", charset.DefaultKoreanCP949Bonus)
	v.SetDefault("koreanEucKrBonus", charset.DefaultKoreanEUCKRBonus)
	v.SetDefault("macCyrillicBonus", charset.DefaultMacCyrillicBonus)
	v.SetDefault("cyrillic1251Bonus", charset.DefaultCyrillic1251Bonus)
	v.SetDefault("arabicOn1251Penalty", charset.DefaultArabicOn1251Penalty)
	v.SetDefault("cyrillicOn1256Penalty", charset.DefaultCyrillicOn1256Penalty)
	v.SetDefault("macCyrillicByteBonus", charset.DefaultMacCyrillicByteBonus)
	v.SetDefault("earlyExitScore", charset.DefaultEarlyExitScore)

	v.SetDefault("fallbacks", charset.DefaultFallbacks)
}
