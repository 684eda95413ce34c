package store

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fakeforge/locdata/locales"
)

// Config type is used to describe store parameters.
// An empty DataRoot selects the embedded data set.
type Config struct {
	DataRoot      string `json:"data_root"      yaml:"data_root"      env:"LOCDATA_DATA_ROOT"`
	DefaultLocale string `json:"default_locale" yaml:"default_locale" env:"LOCDATA_DEFAULT_LOCALE"`
}

func (c *Config) ParseFromFile(path string) error {
	if path != "" {
		err := decodeFile(path, c)
		if err != nil {
			return errors.WithMessagef(err, "failed to parse store config file %q", path)
		}
	}

	return c.PostProcess()
}

func (c *Config) PostProcess() error {
	c.FillDefaults()

	errs := c.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate store config:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (c *Config) FillDefaults() {
	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
}

func (c *Config) Validate() []error {
	var errs []error

	if _, err := locales.Resolve(c.DefaultLocale); err != nil {
		errs = append(errs, errors.Errorf("unknown default locale: %s", c.DefaultLocale))
	}

	return errs
}

func decodeFile(path string, v any) error {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_SYNC, 0)
	if err != nil {
		return errors.New(err.Error())
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return decodeReader("yaml", f, v)
	case ".json":
		return decodeReader("json", f, v)
	default:
		return errors.Errorf("unknown file format %q", ext)
	}
}

func decodeReader(format string, r io.Reader, v any) error {
	var err error

	switch format {
	case "yaml":
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		err = decoder.Decode(v)
	case "json":
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(v)
	default:
		return errors.Errorf("format %q doesn't supported", format)
	}

	if err != nil {
		return errors.New(err.Error())
	}

	err = cleanenv.ReadEnv(v)
	if err != nil {
		return errors.New(err.Error())
	}

	return nil
}

func parseErrsToString(errs []error) string {
	var sb strings.Builder

	for i, err := range errs {
		sb.WriteString("- ")
		sb.WriteString(err.Error())

		if i != len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
