// Package prodscrape extracts structured product records (name, price,
// rating) from HTML of unknown, inconsistent structure. Instead of a fixed
// schema or site-specific rules it classifies markup heuristically: a
// single-pass consumer of tag and text events infers semantic roles from
// attribute naming conventions, buffers text per role, and normalizes the
// buffered text into canonical field values.
//
// This package contains domain types, interfaces, and the extraction core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/, sqlite/,
// goquery/).
package prodscrape
