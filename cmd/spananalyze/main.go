// Command spananalyze loads a span fixture from disk and runs it
// through the span package's analysis and concatenation pipeline.
package main

func main() {
	execute()
}
