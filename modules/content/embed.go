package content

import "embed"

// FS holds the site's authored content. Blog posts live under blog/, work
// case studies under work/, each as a markdown file with YAML front matter.
//
//go:embed blog work
var FS embed.FS
