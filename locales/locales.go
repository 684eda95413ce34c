package locales

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedLocale is returned for locale codes absent from the supported table.
var ErrUnsupportedLocale = errors.New("locale is not supported")

// Info type is used to describe static metadata of a supported locale.
type Info struct {
	Name      string `json:"name"       yaml:"name"`
	NameLocal string `json:"name_local" yaml:"name_local"`
}

// supported is the process-wide locale table. It is initialized once and
// never mutated at runtime.
var supported = map[string]Info{
	"cs":    {Name: "Czech", NameLocal: "Česky"},
	"da":    {Name: "Danish", NameLocal: "Dansk"},
	"de":    {Name: "German", NameLocal: "Deutsch"},
	"de-at": {Name: "Austrian German", NameLocal: "Deutsch (Österreich)"},
	"en":    {Name: "English", NameLocal: "English"},
	"en-au": {Name: "Australian English", NameLocal: "English (Australia)"},
	"en-gb": {Name: "British English", NameLocal: "English (Great Britain)"},
	"es":    {Name: "Spanish", NameLocal: "Español"},
	"es-mx": {Name: "Mexican Spanish", NameLocal: "Español (México)"},
	"fa":    {Name: "Farsi", NameLocal: "فارسی"},
	"fi":    {Name: "Finnish", NameLocal: "Suomi"},
	"fr":    {Name: "French", NameLocal: "Français"},
	"hu":    {Name: "Hungarian", NameLocal: "Magyar"},
	"is":    {Name: "Icelandic", NameLocal: "Íslenska"},
	"it":    {Name: "Italian", NameLocal: "Italiano"},
	"ja":    {Name: "Japanese", NameLocal: "日本語"},
	"ko":    {Name: "Korean", NameLocal: "한국어"},
	"nl":    {Name: "Dutch", NameLocal: "Nederlands"},
	"nl-be": {Name: "Belgian Dutch", NameLocal: "Nederlands (België)"},
	"no":    {Name: "Norwegian", NameLocal: "Norsk"},
	"pl":    {Name: "Polish", NameLocal: "Polski"},
	"pt":    {Name: "Portuguese", NameLocal: "Português"},
	"pt-br": {Name: "Brazilian Portuguese", NameLocal: "Português Brasileiro"},
	"ru":    {Name: "Russian", NameLocal: "Русский"},
	"sv":    {Name: "Swedish", NameLocal: "Svenska"},
	"tr":    {Name: "Turkish", NameLocal: "Türkçe"},
	"uk":    {Name: "Ukrainian", NameLocal: "Українська"},
}

// Resolve function returns the metadata of a supported locale.
// The lookup is pure and case-insensitive.
func Resolve(code string) (Info, error) {
	code = strings.ToLower(code)

	info, ok := supported[code]
	if !ok {
		return Info{}, errors.WithMessagef(ErrUnsupportedLocale, "locale %q", code)
	}

	return info, nil
}

// Name function returns the english display name of a supported locale.
func Name(code string) (string, error) {
	info, err := Resolve(code)
	if err != nil {
		return "", err
	}

	return info.Name, nil
}

// Base returns the base locale of code: the part before the first region
// separator, or the whole code if there is none.
func Base(code string) string {
	code = strings.ToLower(code)

	if i := strings.Index(code, "-"); i >= 0 {
		return code[:i]
	}

	return code
}

// Supported returns the sorted codes of all supported locales.
func Supported() []string {
	codes := make([]string, 0, len(supported))
	for code := range supported {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}
