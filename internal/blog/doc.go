// Package blog assembles the blog section of a site: it compiles every
// entry, applies the draft policy, orders the entries newest first and
// writes the (optionally paginated) index pages.
package blog
