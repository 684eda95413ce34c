package document

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when data file contents are not valid structured data.
var ErrMalformed = errors.New("malformed document")

// DecodeReader parses structured data from r into a Document.
// Supported formats are "yaml" and "json".
func DecodeReader(format string, r io.Reader) (Document, error) {
	var (
		raw any
		err error
	)

	switch format {
	case "yaml":
		err = yaml.NewDecoder(r).Decode(&raw)
	case "json":
		err = json.NewDecoder(r).Decode(&raw)
	default:
		return Document{}, errors.Errorf("format %q doesn't supported", format)
	}

	if err != nil {
		return Document{}, errors.WithMessage(ErrMalformed, err.Error())
	}

	doc, err := FromAny(raw)
	if err != nil {
		return Document{}, errors.WithMessage(ErrMalformed, err.Error())
	}

	return doc, nil
}
