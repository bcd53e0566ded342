/*
	the seqio package reads FASTA records for the CLI, keeping file I/O out
	of the digester itself
*/
package seqio

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
)

// Record is a single FASTA sequence, named and ready to hand to a digester.
type Record struct {
	Name string
	Seq  []byte
}

// ReadFASTA reads every record from a FASTA (optionally gzipped) file.
func ReadFASTA(path string) ([]Record, error) {
	reader, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file %v: %w", path, err)
	}
	defer reader.Close()

	var records []Record
	for {
		rec, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read FASTA record from %v: %w", path, err)
		}
		records = append(records, Record{
			Name: string(rec.Name),
			Seq:  append([]byte(nil), rec.Seq.Seq...),
		})
	}
	return records, nil
}
