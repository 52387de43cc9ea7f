// Command bench measures track/update/load throughput of the store at
// a given document count.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/strata"
)

func main() {
	count := flag.Int("count", 1000, "Number of documents to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark store after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "strata_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d documents in %s...\n", *count, benchDir)
	startGen := time.Now()
	for i := 0; i < *count; i++ {
		content := fmt.Sprintf("# Benchmark Document %d\nGenerated %s\nThis is a test document.\n", i, time.Now().Format("2006-01-02"))
		filename := filepath.Join(benchDir, fmt.Sprintf("doc_%d.md", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	if _, err := strata.Init(benchDir); err != nil {
		panic(err)
	}
	st, err := strata.Open(benchDir)
	if err != nil {
		panic(err)
	}

	// Track everything. Each track persists the full state file, which is
	// the cost this bench exists to keep an eye on.
	startTrack := time.Now()
	for i := 0; i < *count; i++ {
		if _, err := st.Track(fmt.Sprintf("doc_%d.md", i), nil); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Track x%d took: %v\n", *count, time.Since(startTrack))

	// Touch half the files and update everything.
	for i := 0; i < *count; i += 2 {
		filename := filepath.Join(benchDir, fmt.Sprintf("doc_%d.md", i))
		if err := os.WriteFile(filename, []byte(fmt.Sprintf("changed %d\n", i)), 0644); err != nil {
			panic(err)
		}
	}
	startUpdate := time.Now()
	changedCount := 0
	for i := 0; i < *count; i++ {
		_, changed, err := st.Update(fmt.Sprintf("doc_%d.md", i), nil)
		if err != nil {
			panic(err)
		}
		if changed {
			changedCount++
		}
	}
	fmt.Printf("Update x%d (%d changed) took: %v\n", *count, changedCount, time.Since(startUpdate))

	// Cold load of the full state.
	startLoad := time.Now()
	st2, err := strata.Open(benchDir)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Load of %d documents took: %v\n", len(st2.List()), time.Since(startLoad))
}
