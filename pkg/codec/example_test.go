package codec_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ssargent/kenshimod/pkg/codec"
)

// buildExample creates a small mod file in memory
func buildExample() []byte {
	rec := codec.NewRecord()
	rec.TypeCode = 2
	rec.ID = 7
	rec.Name = "Iron Sword"
	rec.DataType = -0x7ffffffe
	rec.StringFields.Set("desc", "A plain iron sword")

	mf := &codec.ModFile{
		Header:  &codec.StandardHeader{ModVersion: 1, Author: "smith"},
		Records: []*codec.Record{rec},
	}

	data, err := codec.NewModCodec().EncodeBytes(mf)
	if err != nil {
		log.Fatal(err)
	}
	return data
}

// ExampleModCodec_Decode demonstrates decoding records and their lookups
func ExampleModCodec_Decode() {
	c := codec.NewModCodec()

	mf, err := c.Decode(bytes.NewReader(buildExample()))
	if err != nil {
		log.Fatal(err)
	}

	for _, rec := range mf.Records {
		desc, _ := rec.StringFields.Get("desc")
		fmt.Printf("%s %s: %s\n", rec.ModType(), rec.ChangeType(), desc)
	}

	// Output:
	// WEAPON NEW: A plain iron sword
}

// ExampleModCodec_DecodeLimit demonstrates a header-only decode
func ExampleModCodec_DecodeLimit() {
	c := codec.NewModCodec()

	mf, err := c.DecodeLimit(bytes.NewReader(buildExample()), 0)
	if err != nil {
		log.Fatal(err)
	}

	info := mf.Info()
	fmt.Printf("author=%s records=%d partial=%v\n", info.Author, info.RecordCount, mf.Partial())

	// Output:
	// author=smith records=1 partial=true
}

// ExampleSummarize demonstrates sampling text for language detection
func ExampleSummarize() {
	mf, err := codec.NewModCodec().DecodeBytes(buildExample())
	if err != nil {
		log.Fatal(err)
	}

	text, symbols := codec.Summarize(mf, codec.DefaultSummaryBudget)
	fmt.Printf("%q %q\n", text, symbols)

	// Output:
	// ",Iron Sword,A plain iron sword" ",,"
}
