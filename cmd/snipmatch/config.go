package main

import (
	"fmt"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hupe1980/snipmatch"
	"github.com/hupe1980/snipmatch/bloom"
	"github.com/hupe1980/snipmatch/rkhash"
)

// config is the CLI configuration: built-in defaults, optionally overlaid by
// a JSON file (-c), then by command-line flags.
type config struct {
	Algorithm    string      `koanf:"algorithm"`
	ChunkSize    int         `koanf:"chunk_size"`
	Modulus      uint64      `koanf:"modulus"`
	HashCount    int         `koanf:"hash_count"`
	BitsPerChunk int         `koanf:"bits_per_chunk"`
	Parallelism  int         `koanf:"parallelism"`
	FetchRate    float64     `koanf:"fetch_rate"`
	Minio        minioConfig `koanf:"minio"`
}

// minioConfig carries the connection details for minio:// document names.
type minioConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	UseSSL    bool   `koanf:"use_ssl"`
}

func loadConfig(path string) (*config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"algorithm":      snipmatch.AlgorithmSimple.String(),
		"chunk_size":     snipmatch.DefaultChunkSize,
		"modulus":        uint64(rkhash.DefaultModulus),
		"hash_count":     bloom.DefaultHashCount,
		"bits_per_chunk": bloom.DefaultBitsPerChunk,
		"parallelism":    1,
		"fetch_rate":     0.0,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
