// Package source provides adapters and utilities for working with data sources in the lazyload library.
//
// This package contains adapters for implementing the ListSource, KeyedListSource
// and PageSource interfaces from plain functions, a LintPageSource that checks the
// page size contract of a PageSource, and counting wrappers that record how many
// times a source was called.
package source
