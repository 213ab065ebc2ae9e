package codec

import (
	"fmt"

	"github.com/antaris-inc/go-xtce/dictionary"
	"github.com/antaris-inc/go-xtce/xerr"
)

// planEntry pairs a flattened entry with the (possibly empty) list of
// include-condition comparisons gating it — an outer ContainerRefEntry's
// condition prepended to whatever conditions its own entries already
// carried, per spec.md §4.3.
type planEntry struct {
	entry      dictionary.Entry
	conditions []dictionary.Comparison
}

// plan is the output of the entry planner: an ordered list of entries
// (outermost ancestor first, matching wire order) plus the flat list
// of equality restrictions collected from every base link walked.
type plan struct {
	entries      []planEntry
	restrictions []dictionary.Comparison
}

// buildPlan flattens the inheritance chain rooted at messageType (a
// container or meta-command name) into a plan, per spec.md §4.3.
// Command-container chains and sequence-container chains share one
// walk: the textual algorithm in spec.md describes them as two steps
// only because the source special-cases ContainerRefEntry flattening
// for sequence containers, but leaving a ContainerRefEntry
// unflattened in a command chain would leave the codec with an entry
// variant it cannot dispatch — so this implementation flattens
// ContainerRefEntry uniformly regardless of which chain it is found
// in, a harmless generalization given Container is a single shape for
// both variants (see dictionary.Container).
func buildPlan(ss *dictionary.SpaceSystem, messageType string, maxDepth int) (*plan, error) {
	if mc, err := ss.GetMetaCommand(messageType); err == nil {
		if mc.CommandContainer == nil {
			return nil, fmt.Errorf("codec: meta-command %q has no command container: %w", messageType, xerr.ErrUnknownReference)
		}

		return planFromContainer(ss, mc.CommandContainer, maxDepth)
	}

	c, err := ss.GetContainer(messageType)
	if err != nil {
		return nil, err
	}

	return planFromContainer(ss, c, maxDepth)
}

func planFromContainer(ss *dictionary.SpaceSystem, start *dictionary.Container, maxDepth int) (*plan, error) {
	type frame struct {
		container *dictionary.Container
	}

	var frames []frame

	visited := make(map[string]bool)
	var restrictions []dictionary.Comparison

	cur := start
	for cur != nil {
		if visited[cur.Name] {
			return nil, fmt.Errorf("codec: cyclic inheritance detected at %q: %w", cur.Name, xerr.ErrCyclicInheritance)
		}
		visited[cur.Name] = true
		if len(visited) > maxDepth {
			return nil, fmt.Errorf("codec: inheritance chain from %q exceeds max depth %d: %w", start.Name, maxDepth, xerr.ErrUnsupportedFeature)
		}

		frames = append(frames, frame{container: cur})

		if cur.Base == nil {
			break
		}

		if err := appendRestrictionsNoDupe(&restrictions, cur.Base.RestrictionCriteria); err != nil {
			return nil, err
		}

		base, err := ss.GetContainer(cur.Base.Ref)
		if err != nil {
			return nil, fmt.Errorf("codec: container %q: %w", cur.Name, err)
		}

		cur = base
	}

	p := &plan{restrictions: restrictions}

	for i := len(frames) - 1; i >= 0; i-- {
		entries, err := flattenEntryList(ss, frames[i].container.EntryList, maxDepth, len(frames))
		if err != nil {
			return nil, err
		}
		p.entries = append(p.entries, entries...)
	}

	return p, nil
}

// flattenEntryList expands every ContainerRefEntry in list into its
// referenced container's own flattened plan, concatenating include
// conditions (outer + inner) per entry. ParameterRefEntry carries its
// own IncludeCondition straight through to the planEntry so it still
// gates encode/decode; ArgumentRefEntry and FixedValueEntry have no
// condition to carry and pass through untouched.
func flattenEntryList(ss *dictionary.SpaceSystem, list []dictionary.Entry, maxDepth, depthUsed int) ([]planEntry, error) {
	var out []planEntry

	for _, e := range list {
		if ref, ok := e.(dictionary.ParameterRefEntry); ok {
			out = append(out, planEntry{entry: e, conditions: ref.IncludeCondition})

			continue
		}

		ref, isContainerRef := e.(dictionary.ContainerRefEntry)
		if !isContainerRef {
			out = append(out, planEntry{entry: e})

			continue
		}

		sub, err := ss.GetContainer(ref.ContainerRef)
		if err != nil {
			return nil, err
		}

		subPlan, err := planFromContainer(ss, sub, maxDepth)
		if err != nil {
			return nil, err
		}

		for _, se := range subPlan.entries {
			out = append(out, planEntry{
				entry:      se.entry,
				conditions: concatConditions(ref.IncludeCondition, se.conditions),
			})
		}
	}

	return out, nil
}

func concatConditions(outer, inner []dictionary.Comparison) []dictionary.Comparison {
	if len(outer) == 0 {
		return inner
	}
	if len(inner) == 0 {
		return outer
	}

	out := make([]dictionary.Comparison, 0, len(outer)+len(inner))
	out = append(out, outer...)
	out = append(out, inner...)

	return out
}

// appendRestrictionsNoDupe merges incoming into dst, rejecting a
// second restriction on a parameter already constrained earlier in
// the same chain (spec.md §9 Open Questions, decision #2: "treat as
// an error in the rewrite").
func appendRestrictionsNoDupe(dst *[]dictionary.Comparison, incoming []dictionary.Comparison) error {
	for _, c := range incoming {
		for _, existing := range *dst {
			if existing.ParameterRef == c.ParameterRef {
				return fmt.Errorf("codec: duplicate restriction on parameter %q within one inheritance chain: %w", c.ParameterRef, xerr.ErrRestrictionViolation)
			}
		}
		*dst = append(*dst, c)
	}

	return nil
}

// buildArgumentIndex walks messageType's meta-command and its
// baseMetaCommand ancestors, collecting every named Argument. Returns
// a nil index (not an error) when messageType does not name a
// meta-command at all.
func buildArgumentIndex(ss *dictionary.SpaceSystem, messageType string, maxDepth int) (map[string]*dictionary.Argument, error) {
	mc, err := ss.GetMetaCommand(messageType)
	if err != nil {
		return nil, nil
	}

	idx := make(map[string]*dictionary.Argument)
	visited := make(map[string]bool)

	cur := mc
	for cur != nil {
		if visited[cur.Name] {
			return nil, fmt.Errorf("codec: cyclic meta-command inheritance detected at %q: %w", cur.Name, xerr.ErrCyclicInheritance)
		}
		visited[cur.Name] = true
		if len(visited) > maxDepth {
			return nil, fmt.Errorf("codec: meta-command inheritance from %q exceeds max depth %d: %w", mc.Name, maxDepth, xerr.ErrUnsupportedFeature)
		}

		for _, a := range cur.ArgumentList {
			if _, exists := idx[a.Name]; !exists {
				idx[a.Name] = a
			}
		}

		if cur.BaseMetaCommand == nil {
			break
		}

		base, err := ss.GetMetaCommand(cur.BaseMetaCommand.Ref)
		if err != nil {
			return nil, fmt.Errorf("codec: meta-command %q: %w", cur.Name, err)
		}
		cur = base
	}

	return idx, nil
}
