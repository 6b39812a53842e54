// Package wordbook turns per-word dictionary pages from wordsmith.org's
// A.Word.A.Day archive into normalized (word, meaning, usage) records and
// serves them for browsing and study.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, csv/, http/).
package wordbook
