package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix namespaces environment overrides
const EnvPrefix = "STYLERULES_"

// candidateConfigFiles are searched in the working directory when no
// explicit path is given
var candidateConfigFiles = []string{
	".stylerules.toml",
	"stylerules.toml",
	".stylerules.yaml",
	"stylerules.yaml",
}

// rawBytesProvider implements a koanf provider over embedded bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the effective configuration. path may be empty, in which case
// the working directory is searched for a config file; a missing file is
// fine, defaults plus environment still apply. An explicit path that cannot
// be loaded is an error.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading embedded defaults")
	}

	// 2. Config file
	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "loading config file %s", path)
			}
		} else {
			logger.Debug().Str("path", path).Msg("loaded config file")
		}
	}

	// 3. Environment overrides: STYLERULES_ROOT_DIR -> root_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling configuration")
	}

	return cfg, nil
}

// parserFor picks the config parser by file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config file extension on %q (want .toml, .yaml, or .yml)", path)
	}
}

// findConfigFile returns the first candidate config file present in the
// working directory, or empty
func findConfigFile() string {
	for _, name := range candidateConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
