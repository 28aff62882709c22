// Package dex holds the catalog logic shared by the terminal UI and the HTTP
// API: enrichment of upstream entries, filtering, favorites, comparison and
// the per-viewer session state.
package dex
