// psyinfo is a tool which lists the song metadata of PsyFiles.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mewkiz/pkg/errutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/mewkiz/psy"
	"github.com/mewkiz/psy/chunk"
)

var (
	// flagJSON specifies if the metadata should be listed as JSON.
	flagJSON bool
	// flagOutput specifies if the JSON metadata should be stored next to each
	// input file, e.g. "song.json" for "song.psy".
	flagOutput bool
	// flagForce specifies if file overwriting should be forced, when a JSON file
	// of the same name already exists.
	flagForce bool
	// flagCharset specifies the character encoding of text fields.
	flagCharset string
)

func init() {
	flag.BoolVar(&flagJSON, "json", false, "List metadata as JSON.")
	flag.BoolVar(&flagOutput, "o", false, "Store JSON metadata next to each input file.")
	flag.BoolVar(&flagForce, "f", false, "Force overwrite.")
	flag.StringVar(&flagCharset, "charset", "", "Character encoding of text fields (default windows-1252).")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: psyinfo [OPTION]... FILE...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	for _, path := range flag.Args() {
		err := psyinfo(os.Stdout, path)
		if err != nil {
			log.Fatalln(err)
		}
	}
}

// psyinfo lists the song metadata of the provided PsyFile.
func psyinfo(w io.Writer, path string) error {
	enc, err := chunk.Charset(flagCharset)
	if err != nil {
		return errutil.Err(err)
	}
	f, err := psy.Parse(path)
	if err != nil {
		return errutil.Err(err)
	}
	if f.PsyVersion != chunk.SignaturePsy3 {
		log.Printf("%s: unrecognized format version %q", path, f.PsyVersion)
	}

	switch {
	case flagOutput:
		return store(path, f)
	case flagJSON:
		return list(w, f)
	default:
		if err := f.WriteSummary(w, enc); err != nil {
			return errutil.Err(err)
		}
		return nil
	}
}

// list writes the metadata as indented JSON to w.
func list(w io.Writer, f *psy.File) error {
	buf, err := json.MarshalIndent(f, "", "\t")
	if err != nil {
		return errutil.Err(err)
	}
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return errutil.Err(err)
	}
	return nil
}

// store writes the metadata as JSON to a file next to path.
func store(path string, f *psy.File) error {
	jsonPath := pathutil.TrimExt(path) + ".json"
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !flagForce {
		flags |= os.O_EXCL
	}
	fw, err := os.OpenFile(jsonPath, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errutil.Newf("the file %q exists already", jsonPath)
		}
		return errutil.Err(err)
	}
	defer fw.Close()
	if err := list(fw, f); err != nil {
		return err
	}
	return fw.Close()
}
