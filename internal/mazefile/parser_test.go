package mazefile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/penomaze/internal/maze"
)

type positionedToken struct {
	c     maze.Coordinate
	token string
}

func collectPositioned(p *Parser) *[]positionedToken {
	out := &[]positionedToken{}
	p.SetConsumer(func(c maze.Coordinate, token string) error {
		*out = append(*out, positionedToken{c, token})
		return nil
	})
	return out
}

func validTokens() []string {
	return []string{"2", "3",
		"token.1", "token.2",
		"token.3", "token.4",
		"token.5", "token.6"}
}

var validPositioned = []positionedToken{
	{maze.Coordinate{X: 0, Y: 0}, "token.1"}, {maze.Coordinate{X: 1, Y: 0}, "token.2"},
	{maze.Coordinate{X: 0, Y: 1}, "token.3"}, {maze.Coordinate{X: 1, Y: 1}, "token.4"},
	{maze.Coordinate{X: 0, Y: 2}, "token.5"}, {maze.Coordinate{X: 1, Y: 2}, "token.6"},
}

func consumeAll(p *Parser, tokens []string) error {
	for _, token := range tokens {
		if err := p.Consume(token); err != nil {
			return err
		}
	}
	return nil
}

func TestParserValidStream(t *testing.T) {
	parser := NewParser()
	out := collectPositioned(parser)

	require.NoError(t, consumeAll(parser, validTokens()))
	assert.Equal(t, validPositioned, *out)
	assert.Equal(t, 2, parser.Width())
	assert.Equal(t, 3, parser.Height())
	assert.Equal(t, 6, parser.Assigned())
}

func TestParserWithTokenizer(t *testing.T) {
	lines := []string{
		"2 3",
		"",
		" # some comment line",
		"token.1    token.2 #line 1",
		"token.3    token.4 # example comment",
		"token.5    token.6",
	}

	parser := NewParser()
	out := collectPositioned(parser)

	tokenizer := NewTokenizer(lines)
	tokenizer.SetConsumer(parser.Consume)

	require.NoError(t, tokenizer.Run())
	assert.Equal(t, validPositioned, *out)
}

func TestParserIncompleteStreamIsAccepted(t *testing.T) {
	tokens := validTokens()
	tokens = tokens[:len(tokens)-1]

	parser := NewParser()
	out := collectPositioned(parser)

	require.NoError(t, consumeAll(parser, tokens))
	assert.Len(t, *out, 5)
}

func TestParserTooManyTiles(t *testing.T) {
	tokens := append(validTokens(), "token.7")

	parser := NewParser()
	out := collectPositioned(parser)

	err := consumeAll(parser, tokens)
	require.Error(t, err)
	assert.True(t, IsSpecificationViolation(err))
	assert.Contains(t, err.Error(), "too many tiles")
	assert.Len(t, *out, 6, "overflowing token must not be emitted")
}

func TestParserZeroSizedMaze(t *testing.T) {
	for _, dims := range [][]string{{"0", "3"}, {"3", "0"}, {"0", "0"}} {
		parser := NewParser()
		require.NoError(t, consumeAll(parser, dims))
		err := parser.Consume("Cross.N")
		assert.True(t, IsSpecificationViolation(err), "dims %v", dims)
	}
}

func TestParserDimensions(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		msg    string
	}{
		{"missing width", validTokens()[1:], "second token must be an integer"},
		{"word width", []string{"two", "3"}, "first token must be an integer"},
		{"word height", []string{"2", "three"}, "second token must be an integer"},
		{"negative width", []string{"-2", "3"}, "first token must be a non-negative integer"},
		{"negative height", []string{"2", "-3"}, "second token must be a non-negative integer"},
		{"float width", []string{"2.0", "3"}, "first token must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := consumeAll(NewParser(), tt.tokens)
			var sv *SpecificationViolationError
			require.ErrorAs(t, err, &sv)
			assert.Equal(t, tt.msg, sv.Msg)
		})
	}
}

func TestParserPropagatesConsumerError(t *testing.T) {
	fail := errors.New("consumer failed")
	parser := NewParser()
	parser.SetConsumer(func(maze.Coordinate, string) error { return fail })

	err := consumeAll(parser, validTokens())
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, 0, parser.Assigned())
}
