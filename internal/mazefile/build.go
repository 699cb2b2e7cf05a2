package mazefile

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/penomaze/internal/maze"
	"github.com/samdwyer/penomaze/internal/telemetry"
)

// Build parses the lines of a mazefile into a new maze.
// Any SpecificationViolationError aborts the build and no maze is returned.
func Build(ctx context.Context, lines []string) (*maze.Maze, error) {
	tracer := telemetry.Tracer("mazefile")
	_, span := tracer.Start(ctx, "mazefile.build")
	defer span.End()

	span.SetAttributes(
		attribute.String("mazefile.build_id", uuid.NewString()),
		attribute.Int("mazefile.lines", len(lines)),
	)

	m := maze.New()
	builder := NewBuilder(m)

	parser := NewParser()
	parser.SetConsumer(builder.Consume)

	tokenizer := NewTokenizer(lines)
	tokenizer.SetConsumer(parser.Consume)

	err := tokenizer.Run()

	span.SetAttributes(
		attribute.Int("maze.width", parser.Width()),
		attribute.Int("maze.height", parser.Height()),
		attribute.Int("maze.tiles", m.Len()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return m, nil
}

// ReadLines reads every line of r, keeping line terminators out of the result.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mazefile: %w", err)
	}
	return lines, nil
}

// BuildReader reads a mazefile from r and builds it.
func BuildReader(ctx context.Context, r io.Reader) (*maze.Maze, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Build(ctx, lines)
}
