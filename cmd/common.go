package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/VeryAmazed/Digest/src/misc"
	"github.com/VeryAmazed/Digest/src/seqio"
	"github.com/VeryAmazed/Digest/src/shard"
)

// checkFASTAFiles validates every input path before any of them are read,
// so a typo in the third file doesn't waste the time spent on the first two.
func checkFASTAFiles(files []string) error {
	if len(files) == 0 {
		return errors.New("no input FASTA file(s) specified")
	}
	for _, f := range files {
		if err := misc.CheckFile(f); err != nil {
			return errors.Wrapf(err, "bad input file %q", f)
		}
	}
	return nil
}

// runSingleRecord runs singlePass over a record that fits in one shard
// (*threads <= 1, or the record is too short to usefully split) and prints
// its output.
func runSingleRecord(name string, seq []byte, singlePass func(seq []byte) (positions, hashes []uint32)) {
	positions, hashes := singlePass(seq)
	printSelections(name, positions, hashes)
}

// runShardedRecord splits seq into *threads shards via the shard package
// and runs newSelector over each one concurrently, reporting progress via a
// bar when *verbose is set.
func runShardedRecord(name string, seq []byte, k, w int, overlap shard.OverlapKind, newSelector func(sub []byte, shardIdx int) (shard.Selector, error)) {
	shards := shard.Plan(len(seq), *threads, k, w, overlap)

	var bar *mpb.Bar
	var pbs *mpb.Progress
	if *verbose {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		bar = pbs.AddBar(int64(len(shards)),
			mpb.PrependDecorators(
				decor.Name(fmt.Sprintf("%s: ", name)),
				decor.CountersNoUnit("%d / %d shards", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(decor.OnComplete(decor.Name(""), "done")),
		)
	}

	positions, err := shard.RunSharded(seq, shards, newSelector, func(int) {
		if bar != nil {
			bar.Increment()
		}
	})
	misc.ErrorCheck(err)
	if pbs != nil {
		pbs.Wait()
	}
	printSelections(name, positions, nil)
}

func printSelections(name string, positions, hashes []uint32) {
	for i, p := range positions {
		if hashes != nil {
			fmt.Printf("%s\t%d\t%d\n", name, p, hashes[i])
		} else {
			fmt.Printf("%s\t%d\n", name, p)
		}
	}
}

// eachRecord reads every FASTA record across files and, for each one,
// dispatches to either a single-pass or sharded run depending on *threads,
// record length and whether hashes were requested (sharding only handles
// the positions-only case).
func eachRecord(files []string, k, w int, overlap shard.OverlapKind, includeHash bool, singlePass func(seq []byte) (positions, hashes []uint32), newSelector func(sub []byte, shardIdx int) (shard.Selector, error)) {
	for _, f := range files {
		records, err := seqio.ReadFASTA(f)
		misc.ErrorCheck(errors.Wrapf(err, "failed to read %q", f))

		for _, rec := range records {
			minShardable := 2 * (k + w)
			if *threads > 1 && !includeHash && len(rec.Seq) >= minShardable {
				runShardedRecord(rec.Name, rec.Seq, k, w, overlap, newSelector)
			} else {
				runSingleRecord(rec.Name, rec.Seq, singlePass)
			}
		}
	}
}
