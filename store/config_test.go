package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFillDefaults(t *testing.T) {
	config := Config{}
	config.FillDefaults()

	require.Equal(t, "en", config.DefaultLocale)
	require.Empty(t, config.DataRoot)
}

func TestConfigValidate(t *testing.T) {
	config := Config{DefaultLocale: "xx"}

	errs := config.Validate()
	require.Len(t, errs, 1)
	require.ErrorContains(t, errs[0], "unknown default locale")
}

func TestConfigParseFromFile(t *testing.T) {
	type testCase struct {
		name          string
		fileName      string
		content       string
		env           map[string]string
		expected      Config
		expectedError string
	}

	testCases := []testCase{
		{
			name:     "Yaml config",
			fileName: "config.yml",
			content:  "data_root: /srv/locdata\ndefault_locale: ru\n",
			expected: Config{DataRoot: "/srv/locdata", DefaultLocale: "ru"},
		},
		{
			name:     "Json config",
			fileName: "config.json",
			content:  `{"default_locale": "pt-br"}`,
			expected: Config{DefaultLocale: "pt-br"},
		},
		{
			name:     "Env overrides file",
			fileName: "config.yml",
			content:  "default_locale: ru\n",
			env:      map[string]string{"LOCDATA_DEFAULT_LOCALE": "de"},
			expected: Config{DefaultLocale: "de"},
		},
		{
			name:     "Empty path keeps defaults",
			fileName: "",
			expected: Config{DefaultLocale: "en"},
		},
		{
			name:          "Unknown field",
			fileName:      "config.yml",
			content:       "locale_root: /srv\n",
			expectedError: "failed to parse store config file",
		},
		{
			name:          "Unsupported default locale",
			fileName:      "config.yml",
			content:       "default_locale: xx\n",
			expectedError: "failed to validate store config",
		},
		{
			name:          "Unknown extension",
			fileName:      "config.toml",
			content:       "default_locale = \"en\"\n",
			expectedError: "unknown file format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			path := ""
			if tc.fileName != "" {
				path = filepath.Join(t.TempDir(), tc.fileName)
				require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			}

			var config Config

			err := config.ParseFromFile(path)

			if tc.expectedError != "" {
				require.ErrorContains(t, err, tc.expectedError)

				return
			}

			require.NoError(t, err)

			if tc.expected.DataRoot != "" {
				require.Equal(t, tc.expected.DataRoot, config.DataRoot)
			}

			require.Equal(t, tc.expected.DefaultLocale, config.DefaultLocale)
		})
	}
}
