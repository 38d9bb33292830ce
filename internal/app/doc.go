// Package app implements the commands of the tabkit tool. It loads tables from
// delimited text or Parquet files, applies filters, reads flat YAML mappings
// and renders the result in the configured format.
package app
