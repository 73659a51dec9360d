package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/ports"
)

// fourthTraitChance is the probability a fourth personality trait is added.
const fourthTraitChance = 0.5

// minMomentAttempts is the floor on random draws before falling back to
// catalog order when filling defining moments.
const minMomentAttempts = 10

// GenerateOptions pins parts of a character. Zero values are sampled.
type GenerateOptions struct {
	Archetype entities.Archetype
	Origin    entities.Origin
	Name      string
}

// LoreGenerator samples characters from a catalog.
type LoreGenerator struct {
	catalog *catalog.Catalog
	rng     ports.Random
}

// NewLoreGenerator creates a generator drawing from rng.
func NewLoreGenerator(c *catalog.Catalog, rng ports.Random) *LoreGenerator {
	return &LoreGenerator{
		catalog: c,
		rng:     rng,
	}
}

// WithRandom returns a generator sharing the catalog but drawing from rng.
func (g *LoreGenerator) WithRandom(rng ports.Random) *LoreGenerator {
	return &LoreGenerator{
		catalog: g.catalog,
		rng:     rng,
	}
}

// Catalog returns the catalog the generator samples from.
func (g *LoreGenerator) Catalog() *catalog.Catalog {
	return g.catalog
}

// Generate produces one character. Parameters and pinned options are
// validated before anything is drawn. Asking for more moments or
// relationships than the catalog can supply yields shorter lists, not an
// error.
func (g *LoreGenerator) Generate(opts GenerateOptions, params entities.GenerationParameters) (entities.CharacterLore, error) {
	if err := params.Validate(); err != nil {
		return entities.CharacterLore{}, err
	}
	if opts.Archetype != "" && !opts.Archetype.IsValid() {
		return entities.CharacterLore{}, fmt.Errorf("%w %q", entities.ErrUnknownArchetype, opts.Archetype)
	}
	if opts.Origin != "" && !opts.Origin.IsValid() {
		return entities.CharacterLore{}, fmt.Errorf("%w %q", entities.ErrUnknownOrigin, opts.Origin)
	}

	archetype := opts.Archetype
	if archetype == "" {
		archetype = entities.AllArchetypes[g.rng.IntN(len(entities.AllArchetypes))]
	}
	origin := opts.Origin
	if origin == "" {
		origin = g.randomOrigin()
	}
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = g.pick(g.catalog.Names(origin))
	}

	ages := g.catalog.AgeRange(archetype)
	age := ages.Min + g.rng.IntN(ages.Max-ages.Min+1)

	traits := g.traits()

	psychology := entities.Psychology{
		CoreMotivation:   g.pick(g.catalog.Motivations(archetype)),
		FatalFlaw:        g.pick(g.catalog.FatalFlaws()),
		GreatestFear:     g.pick(g.catalog.GreatestFears()),
		InternalConflict: g.pick(g.catalog.InternalConflicts()),
	}
	feature := g.pick(g.catalog.DistinctiveFeatures())
	if g.rng.Float64() < params.MysteryFactor {
		psychology.HiddenTruth = g.pick(g.catalog.HiddenTruths())
	}

	birthplace := g.pick(g.catalog.Birthplaces())

	return entities.CharacterLore{
		Identity: entities.Identity{
			Name:               name,
			Age:                age,
			Archetype:          archetype,
			PersonalityTraits:  traits,
			DistinctiveFeature: feature,
		},
		Background: entities.Background{
			Origin:     origin,
			Birthplace: birthplace,
		},
		DefiningMoments:  g.definingMoments(params),
		Psychology:       psychology,
		KeyRelationships: g.relationships(params.RelationshipWeight),
	}, nil
}

// traits draws one positive, one negative and one neutral trait, then on a
// coin flip a fourth from the positive and neutral pools combined. The
// fourth may repeat an earlier trait.
func (g *LoreGenerator) traits() []string {
	positive := g.catalog.PositiveTraits()
	neutral := g.catalog.NeutralTraits()

	traits := make([]string, 0, 4)
	traits = append(traits,
		g.pick(positive),
		g.pick(g.catalog.NegativeTraits()),
		g.pick(neutral),
	)

	if g.rng.Float64() < fourthTraitChance {
		i := g.rng.IntN(len(positive) + len(neutral))
		if i < len(positive) {
			traits = append(traits, positive[i])
		} else {
			traits = append(traits, neutral[i-len(positive)])
		}
	}
	return traits
}

// definingMoments draws distinct moments, each from the tragedy pool with
// probability TragedyWeight and otherwise from the revelation pool. When
// the attempt budget runs out the remainder is filled in catalog order.
func (g *LoreGenerator) definingMoments(params entities.GenerationParameters) []string {
	// No draw can succeed once every distinct moment is held.
	target := min(params.ComplexityWeight, g.catalog.DistinctMomentCount())
	maxAttempts := max(minMomentAttempts, min(params.ComplexityWeight, math.MaxInt/10)*10)

	moments := make([]string, 0, target)
	seen := make(map[string]struct{}, target)

	for attempt := 0; len(moments) < target && attempt < maxAttempts; attempt++ {
		var moment string
		if g.rng.Float64() < params.TragedyWeight {
			moment = g.pick(g.catalog.TragedyMoments())
		} else {
			moment = g.pick(g.catalog.RevelationMoments())
		}
		if _, ok := seen[moment]; ok {
			continue
		}
		seen[moment] = struct{}{}
		moments = append(moments, moment)
	}

	for _, moment := range g.catalog.Moments() {
		if len(moments) >= target {
			break
		}
		if _, ok := seen[moment]; ok {
			continue
		}
		seen[moment] = struct{}{}
		moments = append(moments, moment)
	}

	return moments
}

// relationships picks up to target templates with distinct roles. Each
// person's name comes from a randomly chosen origin, independent of the
// character's own.
func (g *LoreGenerator) relationships(target int) []entities.Relationship {
	templates := g.catalog.RelationshipTemplates()
	used := make(map[string]bool, min(target, len(templates)))
	rels := make([]entities.Relationship, 0, min(target, len(templates)))

	available := make([]entities.RelationshipTemplate, 0, len(templates))
	for len(rels) < target {
		available = available[:0]
		for _, tmpl := range templates {
			if !used[tmpl.Role] {
				available = append(available, tmpl)
			}
		}
		if len(available) == 0 {
			break
		}

		tmpl := available[g.rng.IntN(len(available))]
		used[tmpl.Role] = true

		rels = append(rels, entities.Relationship{
			Name:        g.pick(g.catalog.Names(g.randomOrigin())),
			Role:        tmpl.Role,
			Description: g.pick(tmpl.Descriptions),
		})
	}

	return rels
}

func (g *LoreGenerator) randomOrigin() entities.Origin {
	return entities.AllOrigins[g.rng.IntN(len(entities.AllOrigins))]
}

func (g *LoreGenerator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}
