// Command tabkit converts, filters and renders tabular data.
//
//	tabkit convert people.csv -f markdown
//	tabkit filter people.csv -w city=NY -o ny.parquet
//	tabkit find people.parquet -w name=Alice -f json
//	tabkit mapping settings.yaml --sort -d '='
package main

func main() {
	execute()
}
