package extract

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/types"
)

// defaultBatchParallelism bounds concurrent parses in ParseAll. Parsing is
// CPU-bound and short, so a small constant is enough without starving the
// caller's other work.
const defaultBatchParallelism = 4

// ParseAll parses a batch of raw resume texts with bounded parallelism,
// preserving input order in the output. Individual parses never fail
// (degraded results instead), so the only error is context cancellation
// between documents.
func (p *Parser) ParseAll(ctx context.Context, rawTexts []string) ([]*types.ParseResult, error) {
	results := make([]*types.ParseResult, len(rawTexts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchParallelism)

	for i, raw := range rawTexts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.ParseResumeText(raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
