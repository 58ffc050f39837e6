// Command filterlex prints the tokens of a filter expression, one per line
//
//	filterlex '.foo[0:2] | length'
//	echo '.a.bar' | filterlex -trace
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/qri-io/lexer/filter"
)

var (
	trace = flag.Bool("trace", false, "log every lexer match and state change to stderr")
	dump  = flag.Bool("dump", false, "dump each token's full structure")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("filterlex: ")
	flag.Parse()

	src := strings.Join(flag.Args(), " ")
	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		src = string(data)
	}

	s := filter.NewScanner(src)
	if *trace {
		s.Lexer().Trace = log.New(os.Stderr, "trace: ", 0)
	}

	for {
		tok, err := s.Scan()
		if err != nil {
			log.Fatal(err)
		}
		if *dump {
			spew.Dump(tok)
		} else {
			fmt.Printf("%s\t%-8s %q\n", tok.Pos, tok.Type, tok.Text)
		}
		if tok.Type == filter.EOF {
			return
		}
	}
}
