// flowjournal-cli files status comments into thematic buckets and tags their
// sentiment, action and issues.
//
// Usage:
//
//	flowjournal-cli analyze "決済機能の実装を開始しました" --bucket 決済機能
//	flowjournal-cli batch --input comments.csv --buckets buckets.txt --stdout
//	flowjournal-cli init --lexicon lexicon.yaml
//	flowjournal-cli lexicon --format yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
