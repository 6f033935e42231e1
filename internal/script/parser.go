// Package script parses and runs matchfiles: small scripts that pair regex
// patterns with inputs they are expected to accept or reject.
//
//	match "(a.b)*" {
//	    accept "abab";
//	    reject "aba";
//	}
package script

import (
	"github.com/alecthomas/participle/v2"
)

type Script struct {
	Blocks []*Block `parser:"@@*"`
}

type Block struct {
	Pattern string   `parser:"'match' @String '{'"`
	Checks  []*Check `parser:"@@* '}'"`
}

type Check struct {
	Want  string `parser:"@('accept'|'reject')"`
	Input string `parser:"@String ';'"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

func Parse(data string) (*Script, error) {
	return parser.ParseString("matchfile", data)
}
