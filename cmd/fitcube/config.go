package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/hint"
	"svw.info/fitcube/internal/infrastructure/storage"
	"svw.info/fitcube/internal/ports"
	"svw.info/fitcube/internal/solver"
	"svw.info/fitcube/internal/usecase"
	"svw.info/fitcube/internal/validator"
)

const (
	configFileName = "fitcube"
	configFileType = "yaml"
	envPrefix      = "FITCUBE"

	cfgKeyLogLevel       = "log_level"
	cfgKeyStorageBackend = "storage.backend"
	cfgKeyStoragePath    = "storage.path"
	cfgKeyRedisAddr      = "redis.addr"
	cfgKeyRedisDB        = "redis.db"
	cfgKeyServerAddr     = "server.addr"
)

// loadConfig layers defaults, fitcube.yaml, FITCUBE_* environment
// variables and explicitly set flags, in increasing precedence.
// A missing fitcube.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyStorageBackend, "fs")
	v.SetDefault(cfgKeyStoragePath, "./data")
	v.SetDefault(cfgKeyRedisAddr, "localhost:6379")
	v.SetDefault(cfgKeyRedisDB, 0)
	v.SetDefault(cfgKeyServerAddr, ":8080")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	pf := rootCmd.PersistentFlags()
	for key, name := range map[string]string{
		cfgKeyLogLevel:       "log-level",
		cfgKeyStorageBackend: "storage",
		cfgKeyStoragePath:    "data-dir",
	} {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// openStorage builds the configured backend. The returned func releases it.
func openStorage(v *viper.Viper) (ports.Storage, func() error, error) {
	nop := func() error { return nil }
	switch backend := strings.ToLower(v.GetString(cfgKeyStorageBackend)); backend {
	case "fs", "":
		return storage.NewFS(v.GetString(cfgKeyStoragePath)), nop, nil
	case "sqlite":
		st, err := storage.OpenSQLite(v.GetString(cfgKeyStoragePath))
		if err != nil {
			return nil, nop, err
		}
		return st, st.Close, nil
	case "redis":
		st := storage.NewRedis(v.GetString(cfgKeyRedisAddr), v.GetInt(cfgKeyRedisDB))
		return st, st.Close, nil
	default:
		return nil, nop, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// newService wires the use case around the fixed cube sequence.
func newService(v *viper.Viper) (*usecase.Service, func() error, error) {
	st, closeFn, err := openStorage(v)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(domain.Sequence(), s, validator.New(), hint.NewNextMove(s), st)
	return uc, closeFn, nil
}
