// Copyright © 2017 Will Rowe <will.rowe@stfc.ac.uk>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	rootdigest "github.com/VeryAmazed/Digest/digest"
	digestcore "github.com/VeryAmazed/Digest/src/digest"
	"github.com/VeryAmazed/Digest/src/minimizer"
	"github.com/VeryAmazed/Digest/src/misc"
	"github.com/VeryAmazed/Digest/src/shard"
)

var (
	syncK           *int
	syncW           *int
	syncIncludeHash *bool
)

var syncmerCmd = &cobra.Command{
	Use:   "syncmer [FASTA files...]",
	Short: "select the first k-mer of every window whose argmin is its first or last k-mer",
	Long:  `select the first k-mer of every window of w k-mers whose argmin is its first or last k-mer`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		misc.ErrorCheck(checkFASTAFiles(args))

		k, w := *syncK, *syncW
		eachRecord(args, k, w, shard.WindowOverlap, *syncIncludeHash,
			func(seq []byte) (positions, hashes []uint32) {
				return rootdigest.Syncmer(seq, uint(k), uint(w), *syncIncludeHash)
			},
			func(sub []byte, _ int) (shard.Selector, error) {
				sel, err := minimizer.NewSyncmer(sub, k, w, digestcore.SkipOver)
				if err != nil {
					return nil, errors.Wrap(err, "syncmer")
				}
				return sel, nil
			},
		)
	},
}

func init() {
	RootCmd.AddCommand(syncmerCmd)
	syncK = syncmerCmd.Flags().IntP("kmer", "k", rootdigest.DefaultK, "k-mer length")
	syncW = syncmerCmd.Flags().IntP("window", "w", rootdigest.DefaultWindow, "number of consecutive k-mers per window")
	syncIncludeHash = syncmerCmd.Flags().Bool("include-hash", false, "report each selected window's minimum hash alongside its position")
}
