// Package database provides SQLite-based storage for extraction runs.
//
// Every successful extract saves its run to an archive database in the XDG
// data directory. The archive backs the `matchdex history` command, which
// lists past runs and digs into a single run's teams without re-fetching
// the source.
//
// The schema is intentionally shallow: run metadata in columns for listing
// and filtering, the full match and team structures as JSON blobs for
// faithful reconstruction.
package database
