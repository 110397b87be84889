// ABOUTME: Display projection: trims a canonical result to the user's view settings
package service

import "definex/domain"

// Project applies the display preferences to a resolved result. It never
// mutates its input and is idempotent: projecting a projected result is a
// no-op. Scope "relevant" keeps only the first definition block; exampleCount
// caps the examples kept per block.
func Project(result *domain.DefinitionResult, scope domain.DefinitionScope, exampleCount int) *domain.DefinitionResult {
	if result == nil {
		return nil
	}
	if exampleCount < 0 {
		exampleCount = 0
	}

	out := *result

	blocks := result.Definitions
	if scope != domain.ScopeAll && len(blocks) > 1 {
		blocks = blocks[:1]
	}

	out.Definitions = make([]domain.DefinitionBlock, len(blocks))
	for i, block := range blocks {
		projected := block
		if len(block.Examples) > exampleCount {
			projected.Examples = make([]domain.Example, exampleCount)
			copy(projected.Examples, block.Examples[:exampleCount])
		} else if len(block.Examples) > 0 {
			projected.Examples = make([]domain.Example, len(block.Examples))
			copy(projected.Examples, block.Examples)
		}
		out.Definitions[i] = projected
	}

	return &out
}
