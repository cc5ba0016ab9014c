// Package repository defines the data access interfaces for secretsdir.
//
// The only persisted entity is the classification decision: every time the
// classifier computes, finds no list, or is overridden, a domain.Decision is
// appended to the journal. The journal is history only; it is never read back
// to answer a classification query.
//
// # SQLite Implementation
//
// The sqlite subpackage implements Journal on modernc.org/sqlite with WAL
// mode and a busy timeout so that concurrent CLI invocations on the same
// machine do not fail on a locked database.
//
// # Schema Migration
//
// The sqlite journal migrates its schema on open, creating the decisions
// table and its indexes if they do not exist.
package repository
