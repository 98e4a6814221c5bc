package blog

import (
	"github.com/automoto/clawd/content"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Open returns a store over dir on fsys, or over the embedded sample posts
// when dir does not exist.
func Open(fsys afero.Fs, dir string, logger zerolog.Logger) *Store {
	ok, err := afero.DirExists(fsys, dir)
	if err == nil && ok {
		return NewStore(fsys, dir, logger)
	}
	logger.Warn().Err(err).Str("dir", dir).Msg("content directory not found, using embedded posts")
	return NewStore(afero.FromIOFS{FS: content.Posts}, content.PostsDir, logger)
}
