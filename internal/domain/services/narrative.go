package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// RenderNarrative turns a character into a markdown document. The output
// depends only on lore.
func RenderNarrative(lore entities.CharacterLore) string {
	id := lore.Identity
	sections := []string{
		"# " + id.Name,
		fmt.Sprintf("## Identity\nAge: %d\nArchetype: %s\nPersonality: %s\nDistinctive Features: %s",
			id.Age, id.Archetype, strings.Join(id.PersonalityTraits, ", "), id.DistinctiveFeature),
		fmt.Sprintf("## Background\nOrigin: %s\nBirthplace: %s",
			lore.Background.Origin, lore.Background.Birthplace),
	}

	if len(lore.DefiningMoments) > 0 {
		var b strings.Builder
		b.WriteString("## Defining Moments")
		for i, moment := range lore.DefiningMoments {
			fmt.Fprintf(&b, "\n%d. %s", i+1, moment)
		}
		sections = append(sections, b.String())
	}

	psy := lore.Psychology
	psychology := fmt.Sprintf("## Psychology\nCore Motivation: %s\nFatal Flaw: %s\nGreatest Fear: %s\nInternal Conflict: %s",
		psy.CoreMotivation, psy.FatalFlaw, psy.GreatestFear, psy.InternalConflict)
	if psy.HasHiddenTruth() {
		psychology += "\nHidden Truth: " + psy.HiddenTruth
	}
	sections = append(sections, psychology)

	if len(lore.KeyRelationships) > 0 {
		var b strings.Builder
		b.WriteString("## Relationships")
		for _, rel := range lore.KeyRelationships {
			fmt.Fprintf(&b, "\n- %s (%s): %s", rel.Name, rel.Role, rel.Description)
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// RenderCollection renders characters as one numbered document separated by
// horizontal rules.
func RenderCollection(lores []entities.CharacterLore) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated Characters (%d Total)\n\n---\n\n", len(lores))
	for i, lore := range lores {
		fmt.Fprintf(&b, "## Character %d\n\n", i+1)
		b.WriteString(RenderNarrative(lore))
		b.WriteString("\n---\n\n")
	}
	return b.String()
}
