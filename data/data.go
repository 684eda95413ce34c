// Package data ships the built-in reference data set, laid out as one
// directory per locale with one structured data file per category.
package data

import "embed"

//go:embed de de-at en en-au en-gb pt pt-br ru
var files embed.FS

// Files returns the embedded data root. Paths inside it follow the
// <locale>/<file> layout, e.g. "en/datetime.json".
func Files() embed.FS {
	return files
}
