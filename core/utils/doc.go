// Package utils provides common utility functions for the catalog-importer
// application. It includes lenient parsers for the loosely formatted date,
// year, and ISBN strings returned by the external catalog.
package utils
