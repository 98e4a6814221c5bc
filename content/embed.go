// Package content bundles the sample posts shipped with the binary.
package content

import "embed"

// Posts holds posts/*.md. The store reads it when no content directory exists on disk.
//
//go:embed posts/*.md
var Posts embed.FS

// PostsDir is the directory of the posts inside Posts.
const PostsDir = "posts"
