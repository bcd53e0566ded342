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
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/VeryAmazed/Digest/src/version"
)

// the command line arguments shared by every subcommand
var (
	threads *int  // number of shards to split each sequence into
	verbose *bool // show progress bars on multi-shard runs
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "digest",
	Short:   "stream nucleotide k-mer minimizers from FASTA sequences",
	Version: version.GetVersion(),
	Long: `
#####################################################################################
		digest: streaming k-mer minimizer engine
#####################################################################################

 digest selects representative k-mers from nucleotide sequences using a rolling
 canonical ntHash, under one of three schemes: a modulo-minimizer, a sliding
 window-minimizer, or a syncmer.

 Each scheme is exposed as its own subcommand and reads one or more FASTA files,
 writing the selected k-mer positions (and, optionally, their hashes) to stdout.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			log.Printf("running digest (version %s)", version.GetVersion())
		}
	},
}

// Execute is called by main.main(). It only needs to happen once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	threads = RootCmd.PersistentFlags().IntP("threads", "t", 1, "number of shards to split each sequence into")
	verbose = RootCmd.PersistentFlags().BoolP("verbose", "v", false, "show a progress bar for multi-shard runs")
}
