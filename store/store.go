package store

import (
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/fakeforge/locdata/data"
	"github.com/fakeforge/locdata/document"
	"github.com/fakeforge/locdata/locales"
)

// cacheKey identifies one pulled document. Both parts are required:
// two locales pulling the same file must not share an entry.
type cacheKey struct {
	file   string
	locale string
}

// Store type is used to pull per-locale reference data documents with
// memoization. Entries are immutable once computed and are never evicted;
// the cache lives as long as the store.
type Store struct {
	fs            afero.Fs
	root          string
	defaultLocale string
	cache         map[cacheKey]document.Document
	mutex         *sync.RWMutex
}

// NewStore function creates Store object reading from the local filesystem,
// or from the embedded data set when the configured data root is empty.
func NewStore(config Config) (*Store, error) {
	if err := config.PostProcess(); err != nil {
		return nil, err
	}

	fsys := afero.Fs(afero.NewOsFs())
	root := config.DataRoot

	if root == "" {
		fsys = afero.FromIOFS{FS: data.Files()}
		root = "."
	}

	return newStore(config, fsys, root), nil
}

// NewStoreWithFs function creates Store object reading from the given
// filesystem, with the configured data root as path prefix.
func NewStoreWithFs(config Config, fsys afero.Fs) (*Store, error) {
	if err := config.PostProcess(); err != nil {
		return nil, err
	}

	root := config.DataRoot
	if root == "" {
		root = "."
	}

	return newStore(config, fsys, root), nil
}

func newStore(config Config, fsys afero.Fs, root string) *Store {
	return &Store{
		fs:            fsys,
		root:          root,
		defaultLocale: config.DefaultLocale,
		cache:         make(map[cacheKey]document.Document),
		mutex:         &sync.RWMutex{},
	}
}

// Pull function returns the data document for file and locale, with regional
// overrides merged over the base locale for composite codes like "en-gb".
// An empty locale selects the configured default. Repeated calls with the
// same arguments return the cached document without touching the filesystem.
//
// Returned documents are shared between callers and must be treated as
// read-only; Document itself exposes no mutators.
func (s *Store) Pull(file, locale string) (document.Document, error) {
	if locale == "" {
		locale = s.defaultLocale
	}

	locale = strings.ToLower(locale)

	if _, err := locales.Resolve(locale); err != nil {
		return document.Document{}, err
	}

	key := cacheKey{file: file, locale: locale}

	s.mutex.RLock()
	doc, ok := s.cache[key]
	s.mutex.RUnlock()

	if ok {
		return doc, nil
	}

	doc, err := s.build(file, locale)
	if err != nil {
		return document.Document{}, err
	}

	s.mutex.Lock()
	if cached, ok := s.cache[key]; ok {
		// Lost a race with an identical pull; both computed the same
		// document, converge on the stored one.
		doc = cached
	} else {
		s.cache[key] = doc
	}
	s.mutex.Unlock()

	return doc, nil
}

func (s *Store) build(file, locale string) (document.Document, error) {
	base := locales.Base(locale)

	doc, err := s.load(file, base)
	if err != nil {
		return document.Document{}, err
	}

	if base != locale {
		// A composite locale requires its own file; a missing override
		// is an error, not a fallback to base-only data.
		region, err := s.load(file, locale)
		if err != nil {
			return document.Document{}, err
		}

		doc = document.DeepMerge(doc, region)
	}

	return doc, nil
}

// load reads and decodes <root>/<locale>/<file>. Locale validity is the
// caller's concern; this layer only touches the filesystem.
func (s *Store) load(file, locale string) (document.Document, error) {
	filePath := path.Join(s.root, locale, file)

	var format string

	switch ext := strings.ToLower(path.Ext(file)); ext {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		return document.Document{}, errors.Errorf("unknown data file format %q", ext)
	}

	f, err := s.fs.Open(filePath)
	if err != nil {
		return document.Document{}, errors.WithMessagef(err, "failed to open data file %q", filePath)
	}
	defer f.Close()

	slog.Debug("loading data file", slog.String("path", filePath))

	doc, err := document.DecodeReader(format, f)
	if err != nil {
		return document.Document{}, errors.WithMessagef(err, "failed to decode data file %q", filePath)
	}

	return doc, nil
}
