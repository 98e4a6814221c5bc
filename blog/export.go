package blog

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/spf13/afero"
)

// IndexFile lists the exported posts, newest first.
const IndexFile = "index.json"

// Export writes every post as <slug>.html into outDir on dst, followed by
// the index. It returns the number of posts written.
func (s *Store) Export(dst afero.Fs, outDir string) (int, error) {
	if err := dst.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	posts := s.All()
	for _, p := range posts {
		name := path.Join(outDir, p.Slug+".html")
		if err := afero.WriteFile(dst, name, []byte(p.Content), 0o644); err != nil {
			return 0, fmt.Errorf("write %s: %w", name, err)
		}
		s.log.Debug().Str("slug", p.Slug).Msg("post exported")
	}

	index, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode index: %w", err)
	}
	if err := afero.WriteFile(dst, path.Join(outDir, IndexFile), index, 0o644); err != nil {
		return 0, fmt.Errorf("write index: %w", err)
	}
	return len(posts), nil
}
