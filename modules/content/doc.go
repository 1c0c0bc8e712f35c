// Package content loads and indexes the site's authored documents - blog
// posts and work case studies written as markdown with YAML front matter -
// and serves them by slug or as date-sorted collections.
package content
