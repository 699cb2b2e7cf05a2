// Package mazefile parses mazefiles into mazes.
//
// A mazefile is a whitespace separated list of tokens. '#' starts a comment
// that runs to the end of the line. The first two tokens give the width and
// height of the maze, every following token names a tile and its orientation,
// e.g. "Corner.E", and tiles are listed row by row starting at the top left:
//
//	# a 2 by 2 maze
//	2 2
//	Straight.N Corner.E
//	T.S        Closed.W
//
// Parsing is a chain of three stages. The Tokenizer splits lines into tokens,
// the Parser gives each tile token its coordinate and the Builder turns
// positioned tokens into tiles of a maze. Build wires the chain together.
package mazefile

import "strings"

// TokenConsumer receives tokens one at a time. Returning an error stops the tokenizer.
type TokenConsumer func(token string) error

// Tokenizer removes comments from mazefile lines and splits them into tokens.
type Tokenizer struct {
	lines    []string
	consumer TokenConsumer
}

// NewTokenizer creates a tokenizer over the given lines.
// Lines may still carry their "\n" or "\r\n" terminators.
func NewTokenizer(lines []string) *Tokenizer {
	return &Tokenizer{lines: lines}
}

// SetConsumer registers the function that receives every token.
// Without a consumer, Run discards all tokens.
func (t *Tokenizer) SetConsumer(consumer TokenConsumer) {
	t.consumer = consumer
}

// Run tokenizes every line from the start and hands the tokens to the consumer
// in file order. The first consumer error stops the run and is returned.
func (t *Tokenizer) Run() error {
	for _, line := range t.lines {
		for _, token := range Tokens(line) {
			if t.consumer == nil {
				continue
			}
			if err := t.consumer(token); err != nil {
				return err
			}
		}
	}
	return nil
}

// Tokens returns the tokens on a single mazefile line.
func Tokens(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	// Fields splits on runs of whitespace and drops leading and trailing space
	return strings.Fields(line)
}
