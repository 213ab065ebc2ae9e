// Package dictionary implements the XTCE Space System data model: the
// named type/parameter/container/meta-command registries a message
// codec resolves references against. Construction is purely
// programmatic (the XTCE XML schema loader is an out-of-scope external
// collaborator, per spec.md §1); callers Add* every object, then call
// Finalize once to validate references and run the eager-resolution
// passes spec.md's Design Notes call for.
package dictionary

import (
	"fmt"

	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/antaris-inc/go-xtce/xerr"
)

// SpaceSystem is the root dictionary: parameter/argument type sets,
// a parameter set, a container set, and a meta-command set, each its
// own namespace (spec.md §3).
type SpaceSystem struct {
	Name string

	parameterTypes *registry[Type]
	argumentTypes  *registry[Type]
	parameters     *registry[Parameter]
	containers     *registry[Container]
	metaCommands   *registry[MetaCommand]

	inheritorsByBase map[string][]string

	finalized bool
}

// NewSpaceSystem returns an empty, mutable SpaceSystem ready to be
// populated via the Add* methods.
func NewSpaceSystem(name string) *SpaceSystem {
	return &SpaceSystem{
		Name:             name,
		parameterTypes:   newRegistry[Type](),
		argumentTypes:    newRegistry[Type](),
		parameters:       newRegistry[Parameter](),
		containers:       newRegistry[Container](),
		metaCommands:     newRegistry[MetaCommand](),
		inheritorsByBase: make(map[string][]string),
	}
}

func (ss *SpaceSystem) AddParameterType(t *Type) error {
	return ss.parameterTypes.put(t.Name, t)
}

func (ss *SpaceSystem) AddArgumentType(t *Type) error {
	return ss.argumentTypes.put(t.Name, t)
}

func (ss *SpaceSystem) AddParameter(p *Parameter) error {
	return ss.parameters.put(p.Name, p)
}

func (ss *SpaceSystem) AddContainer(c *Container) error {
	return ss.containers.put(c.Name, c)
}

func (ss *SpaceSystem) AddMetaCommand(m *MetaCommand) error {
	return ss.metaCommands.put(m.Name, m)
}

// Finalize validates the type and inheritance references of the
// dictionary and runs the eager-resolution passes spec.md's Design
// Notes recommend in place of the original's lazy, mutate-on-first-lookup
// array binding: it resolves every Parameter/Argument's Type, every
// array Type's ElementType (also filling an ArrayEncoding's nil Element
// from it), and every container/meta-command base link, validates
// restriction/include-condition comparisons support only the
// `==`/instance-0/calibrated trio, and builds the inheritance
// reverse-index FindInheritors consults. Entry references
// (ParameterRef, ArgumentRef, ContainerRef) and the ParameterRef of a
// comparison are not checked here; an unresolved entry reference
// surfaces as ErrUnknownReference when a message using it is encoded
// or decoded. The dictionary is immutable after this call succeeds
// (spec.md §3 "Lifecycle").
func (ss *SpaceSystem) Finalize() error {
	if err := resolveArrayElements(ss.parameterTypes); err != nil {
		return err
	}
	if err := resolveArrayElements(ss.argumentTypes); err != nil {
		return err
	}

	for _, name := range ss.parameters.all() {
		p, _ := ss.parameters.get(name)
		t, ok := ss.parameterTypes.get(p.TypeRef)
		if !ok {
			return fmt.Errorf("dictionary: parameter %q references unknown type %q: %w", p.Name, p.TypeRef, xerr.ErrUnknownReference)
		}
		p.Type = t
	}

	for _, name := range ss.metaCommands.all() {
		m, _ := ss.metaCommands.get(name)
		for _, arg := range m.ArgumentList {
			t, ok := ss.argumentTypes.get(arg.TypeRef)
			if !ok {
				return fmt.Errorf("dictionary: argument %q references unknown type %q: %w", arg.Name, arg.TypeRef, xerr.ErrUnknownReference)
			}
			arg.Type = t
		}

		if m.BaseMetaCommand != nil {
			if _, ok := ss.metaCommands.get(m.BaseMetaCommand.Ref); !ok {
				return fmt.Errorf("dictionary: meta-command %q has unknown base meta-command %q: %w", m.Name, m.BaseMetaCommand.Ref, xerr.ErrUnknownReference)
			}
			if err := validateComparisons(m.BaseMetaCommand.RestrictionCriteria); err != nil {
				return err
			}
			ss.inheritorsByBase[m.BaseMetaCommand.Ref] = append(ss.inheritorsByBase[m.BaseMetaCommand.Ref], m.Name)
		}

		if m.CommandContainer != nil {
			if _, ok := ss.containers.get(m.CommandContainer.Name); !ok {
				if err := ss.AddContainer(m.CommandContainer); err != nil {
					return fmt.Errorf("dictionary: meta-command %q: %w", m.Name, err)
				}
			}
		}
	}

	for _, name := range ss.containers.all() {
		c, _ := ss.containers.get(name)

		for _, e := range c.EntryList {
			var cond []Comparison
			switch v := e.(type) {
			case ParameterRefEntry:
				cond = v.IncludeCondition
			case ContainerRefEntry:
				cond = v.IncludeCondition
			}
			if err := validateComparisons(cond); err != nil {
				return err
			}
		}

		if c.Base != nil {
			if _, ok := ss.containers.get(c.Base.Ref); !ok {
				return fmt.Errorf("dictionary: container %q has unknown base container %q: %w", c.Name, c.Base.Ref, xerr.ErrUnknownReference)
			}
			if err := validateComparisons(c.Base.RestrictionCriteria); err != nil {
				return err
			}
			ss.inheritorsByBase[c.Base.Ref] = append(ss.inheritorsByBase[c.Base.Ref], c.Name)
		}
	}

	ss.finalized = true

	return nil
}

func validateComparisons(cs []Comparison) error {
	for _, c := range cs {
		if c.Operator != "==" {
			return fmt.Errorf("dictionary: comparison on %q uses unsupported operator %q: %w", c.ParameterRef, c.Operator, xerr.ErrUnsupportedFeature)
		}
		if c.Instance != 0 {
			return fmt.Errorf("dictionary: comparison on %q uses unsupported instance %d: %w", c.ParameterRef, c.Instance, xerr.ErrUnsupportedFeature)
		}
		if !c.UseCalibratedValue {
			return fmt.Errorf("dictionary: comparison on %q requires useCalibratedValue=true: %w", c.ParameterRef, xerr.ErrUnsupportedFeature)
		}
	}

	return nil
}

func resolveArrayElements(types *registry[Type]) error {
	for _, name := range types.all() {
		t, _ := types.get(name)
		if t.Kind != KindArray {
			continue
		}

		elem, ok := types.get(t.ElementTypeRef)
		if !ok {
			return fmt.Errorf("dictionary: array type %q references unknown element type %q: %w", t.Name, t.ElementTypeRef, xerr.ErrUnknownReference)
		}
		t.ElementType = elem
		if ae, ok := t.Encoding.(*encoding.ArrayEncoding); ok && ae.Element == nil {
			ae.Element = elem.Encoding
		}
	}

	return nil
}

// GetSequenceContainer resolves name to a non-command Container.
func (ss *SpaceSystem) GetSequenceContainer(name string) (*Container, error) {
	c, err := ss.GetContainer(name)
	if err != nil {
		return nil, err
	}
	if c.IsCommand {
		return nil, fmt.Errorf("dictionary: %q is a command container, not a sequence container: %w", name, xerr.ErrTypeMismatch)
	}

	return c, nil
}

// GetContainer resolves name to a Container of either variant.
func (ss *SpaceSystem) GetContainer(name string) (*Container, error) {
	c, ok := ss.containers.get(name)
	if !ok {
		return nil, fmt.Errorf("dictionary: unknown container %q: %w", name, xerr.ErrUnknownReference)
	}

	return c, nil
}

// GetMetaCommand resolves name to a MetaCommand.
func (ss *SpaceSystem) GetMetaCommand(name string) (*MetaCommand, error) {
	m, ok := ss.metaCommands.get(name)
	if !ok {
		return nil, fmt.Errorf("dictionary: unknown meta-command %q: %w", name, xerr.ErrUnknownReference)
	}

	return m, nil
}

// GetParameter resolves name to a Parameter.
func (ss *SpaceSystem) GetParameter(name string) (*Parameter, error) {
	p, ok := ss.parameters.get(name)
	if !ok {
		return nil, fmt.Errorf("dictionary: unknown parameter %q: %w", name, xerr.ErrUnknownReference)
	}

	return p, nil
}

// GetEntryType resolves typeName against the parameter type set, then
// the argument type set, returning the first match. Array element
// types are already bound by Finalize, so no lazy binding happens
// here (spec.md §6 describes `getEntryType` as doing this lazily; see
// Design Notes for why go-xtce resolves eagerly instead).
func (ss *SpaceSystem) GetEntryType(typeName string) (*Type, error) {
	if t, ok := ss.parameterTypes.get(typeName); ok {
		return t, nil
	}
	if t, ok := ss.argumentTypes.get(typeName); ok {
		return t, nil
	}

	return nil, fmt.Errorf("dictionary: unknown type %q: %w", typeName, xerr.ErrUnknownReference)
}

// FindInheritors returns the names of every container or meta-command
// whose base link points at name, via the reverse index Finalize
// builds.
func (ss *SpaceSystem) FindInheritors(name string) []string {
	return ss.inheritorsByBase[name]
}
