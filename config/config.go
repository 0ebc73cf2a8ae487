// Package config loads sink construction parameters from the environment
// and an optional config file. It is glue around the core: sinks take
// explicit Config structs, this package fills them in.
//
// Values come from (highest precedence first): environment variables with
// the OBJCACHE prefix (OBJCACHE_S3_ENDPOINT, OBJCACHE_REDIS_URL, ...), the
// config file, then defaults. A missing required value is a
// *sink.ConfigError, distinct from any runtime I/O failure.
package config

import (
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/objcache/sink"
	"github.com/unkn0wn-root/objcache/sink/s3"
)

// DefaultRedisURL is used when no redis URL is configured.
const DefaultRedisURL = "redis://localhost:6379/0"

// Loader reads configuration once and hands out typed sink configs.
type Loader struct {
	v *viper.Viper
}

// Load initializes the loader. cfgFile may be empty; then only defaults and
// environment variables apply. A present-but-broken config file is an error,
// a missing one is not.
func Load(cfgFile string) (*Loader, error) {
	v := viper.New()

	v.SetDefault("s3.region", s3.DefaultRegion)
	v.SetDefault("redis.url", DefaultRedisURL)

	v.SetEnvPrefix("OBJCACHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}
	return &Loader{v: v}, nil
}

// S3 builds the remote sink config. Endpoint and bucket are required.
func (l *Loader) S3() (s3.Config, error) {
	cfg := s3.Config{
		Endpoint:        l.v.GetString("s3.endpoint"),
		Region:          l.v.GetString("s3.region"),
		Bucket:          l.v.GetString("s3.bucket"),
		AccessKeyID:     l.v.GetString("s3.access_key_id"),
		SecretAccessKey: l.v.GetString("s3.secret_access_key"),
	}
	if cfg.Endpoint == "" {
		return s3.Config{}, &sink.ConfigError{Var: "s3.endpoint"}
	}
	if cfg.Bucket == "" {
		return s3.Config{}, &sink.ConfigError{Var: "s3.bucket"}
	}
	return cfg, nil
}

// Redis parses the configured redis URL into client options.
func (l *Loader) Redis() (*goredis.Options, error) {
	url := l.v.GetString("redis.url")
	if url == "" {
		return nil, &sink.ConfigError{Var: "redis.url"}
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("config: invalid redis url: %w", err)
	}
	return opts, nil
}
