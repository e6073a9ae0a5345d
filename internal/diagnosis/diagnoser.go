package diagnosis

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/misconception"
)

// Diagnoser maps an incorrect (question, response) pair to an ordered
// set of misconception tags.
//
// Determinism contract: identical inputs always yield an identical tag
// set. The only nondeterministic step, LLM refinement, is cached keyed
// by normalized response text.
type Diagnoser struct {
	cfg     Config
	checks  []SignatureCheck
	refiner *Refiner
	logger  *zap.Logger

	// cache memoizes refinement results: key → []string.
	cache sync.Map
}

// NewDiagnoser creates a Diagnoser. refiner may be nil, in which case
// only rule-based diagnosis runs.
func NewDiagnoser(cfg Config, refiner *Refiner, logger *zap.Logger) *Diagnoser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Diagnoser{
		cfg:     cfg,
		checks:  DefaultSignatureChecks(),
		refiner: refiner,
		logger:  logger,
	}
}

// Diagnose returns the ordered misconception tags for an incorrect
// response, capped at TopK. An incorrect response matching no pattern
// yields the single tag "unclassified". Correct responses yield nil.
func (d *Diagnoser) Diagnose(ctx context.Context, input Input, correct bool) []string {
	if correct || input.Question == nil {
		return nil
	}

	if input.Question.Kind == content.KindMCQ {
		return d.diagnoseMCQ(input)
	}
	return d.diagnoseFreeForm(ctx, input)
}

// diagnoseMCQ applies the authoring-time option→tag mapping.
func (d *Diagnoser) diagnoseMCQ(input Input) []string {
	key := strings.ToUpper(strings.TrimSpace(input.Response))
	if tag, ok := input.Question.OptionMisconceptions[key]; ok && misconception.Exists(tag) {
		return []string{tag}
	}
	return []string{misconception.TagUnclassified}
}

// diagnoseFreeForm runs execution-output heuristics and the signature
// registry, falling back to cached LLM refinement.
func (d *Diagnoser) diagnoseFreeForm(ctx context.Context, input Input) []string {
	matches := matchExecutionOutput(input.ExecutionOutput)

	for _, c := range d.checks {
		if conf := c.Match(input.Response); conf > 0 {
			matches = append(matches, Match{
				Tag:         c.Tag(),
				Confidence:  conf,
				Specificity: c.Specificity(),
				Source:      c.Name(),
			})
		}
	}

	tags := d.rank(matches)
	if len(tags) > 0 {
		return tags
	}

	if d.refiner != nil {
		if tags := d.refine(ctx, input); len(tags) > 0 {
			return tags
		}
	}

	return []string{misconception.TagUnclassified}
}

// rank filters matches by the confidence threshold, orders them by
// specificity, then declared severity, then registry insertion order,
// dedupes by tag, and caps at TopK.
func (d *Diagnoser) rank(matches []Match) []string {
	filtered := matches[:0:0]
	for _, m := range matches {
		if m.Confidence >= d.cfg.ConfidenceThreshold && misconception.Exists(m.Tag) {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Specificity != b.Specificity {
			return a.Specificity > b.Specificity
		}
		ma, mb := misconception.Get(a.Tag), misconception.Get(b.Tag)
		if ma.Severity != mb.Severity {
			return ma.Severity.MoreSevere(mb.Severity)
		}
		return ma.Order() < mb.Order()
	})

	var tags []string
	for _, m := range filtered {
		if slices.Contains(tags, m.Tag) {
			continue
		}
		tags = append(tags, m.Tag)
		if len(tags) == d.cfg.TopK {
			break
		}
	}
	return tags
}

// refine consults the LLM behind the deterministic cache.
func (d *Diagnoser) refine(ctx context.Context, input Input) []string {
	key := cacheKey(input.Question.ConceptID, input.Response)
	if cached, ok := d.cache.Load(key); ok {
		return slices.Clone(cached.([]string))
	}

	candidates := misconception.ByConcept(input.Question.ConceptID)
	if len(candidates) == 0 {
		return nil
	}

	tag, conf, err := d.refiner.Refine(ctx, refineRequest{
		ConceptID:    input.Question.ConceptID,
		QuestionText: input.Question.Prompt,
		Response:     input.Response,
		Candidates:   candidates,
	})
	if err != nil {
		// Errors are not cached: a later retry may succeed.
		d.logger.Warn("diagnosis refinement failed",
			zap.String("concept", input.Question.ConceptID),
			zap.Error(err))
		return nil
	}

	var tags []string
	if tag != "" && conf >= d.cfg.ConfidenceThreshold {
		tags = []string{tag}
	}
	d.cache.Store(key, tags)
	return slices.Clone(tags)
}

// cacheKey builds the refinement cache key from the concept and the
// normalized response text.
func cacheKey(conceptID, response string) string {
	return conceptID + "\x00" + normalizeResponse(response)
}

// normalizeResponse lowercases and collapses whitespace so trivially
// reformatted responses hit the same cache entry.
func normalizeResponse(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
