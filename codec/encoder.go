// Package codec implements the entry planner and bit-accurate message
// codec: flattening a container or meta-command's inheritance chain
// into an ordered plan, then driving that plan to encode a record
// into a bit string or decode a bit string into a record, with
// restriction auto-fill on encode and speculative abstract-type
// dispatch on decode.
package codec

import (
	"fmt"
	"strconv"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/dictionary"
	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/antaris-inc/go-xtce/xerr"
)

// Encoder drives the planner and the bit codec against one
// SpaceSystem. Constructed via NewEncoder with the teacher's
// options-functional pattern
// (_examples/arloliu-mebo/blob/numeric_encoder.go's
// NumericEncoderOption/WithLittleEndian shape).
type Encoder struct {
	ss                  *dictionary.SpaceSystem
	maxInheritanceDepth int
}

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithMaxInheritanceDepth bounds how many containers/meta-commands the
// planner will walk up a single inheritance chain before treating it
// as a guard failure, independent of the cycle-detection visited set
// (spec.md §9: "Guard against cycles with a visited set... treat as
// hard error when the set revisits a name" — this option is a second,
// coarser backstop for very deep but acyclic dictionaries).
func WithMaxInheritanceDepth(n int) Option {
	return func(e *Encoder) { e.maxInheritanceDepth = n }
}

// NewEncoder returns an Encoder bound to ss, which must already have
// had Finalize called on it.
func NewEncoder(ss *dictionary.SpaceSystem, opts ...Option) *Encoder {
	e := &Encoder{ss: ss, maxInheritanceDepth: 64}
	for _, o := range opts {
		o(e)
	}

	return e
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	requireConcrete bool
}

// WithRequireConcrete makes Decode keep trying inheritors until a
// concrete type fully consumes the bit string, even when an abstract
// ancestor happens to consume every bit itself (spec.md §4.4 step 3 /
// §8 scenario 4: "concrete preference when a shorter decode is
// possible").
func WithRequireConcrete() DecodeOption {
	return func(c *decodeConfig) { c.requireConcrete = true }
}

// Encode builds msg's flattened plan, injects restriction values into
// msg.Entries (always overwriting, per spec.md §9 decision #3), then
// encodes each entry in plan order against msg.Entries as context.
func (e *Encoder) Encode(msg *Message) (*bits.String, error) {
	p, err := buildPlan(e.ss, msg.MessageType, e.maxInheritanceDepth)
	if err != nil {
		return nil, err
	}

	if msg.Entries == nil {
		msg.Entries = make(map[string]any)
	}

	for _, r := range p.restrictions {
		param, err := e.ss.GetParameter(r.ParameterRef)
		if err != nil {
			return nil, err
		}

		v, err := castRestrictionValue(param.Type, r.Value)
		if err != nil {
			return nil, err
		}

		msg.Entries[r.ParameterRef] = v
	}

	argIndex, err := buildArgumentIndex(e.ss, msg.MessageType, e.maxInheritanceDepth)
	if err != nil {
		return nil, err
	}

	ctx := recordContext(msg.Entries)

	var parts []*bits.String

	for _, pe := range p.entries {
		if !conditionsSatisfied(msg.Entries, pe.conditions) {
			continue
		}

		part, err := e.encodeEntry(pe.entry, msg.Entries, ctx, argIndex)
		if err != nil {
			return nil, err
		}
		if part != nil {
			parts = append(parts, part)
		}
	}

	return bits.Concat(parts...), nil
}

func (e *Encoder) encodeEntry(entry dictionary.Entry, record map[string]any, ctx encoding.Context, argIndex map[string]*dictionary.Argument) (*bits.String, error) {
	switch v := entry.(type) {
	case dictionary.ParameterRefEntry:
		param, err := e.ss.GetParameter(v.ParameterRef)
		if err != nil {
			return nil, err
		}

		val, ok := record[v.ParameterRef]
		if !ok {
			return nil, fmt.Errorf("codec: missing required entry %q: %w", v.ParameterRef, xerr.ErrMissingField)
		}

		return param.Type.Encoding.Encode(val, ctx)

	case dictionary.ArgumentRefEntry:
		arg, ok := argIndex[v.ArgumentRef]
		if !ok {
			return nil, fmt.Errorf("codec: unknown argument %q: %w", v.ArgumentRef, xerr.ErrUnknownReference)
		}

		val, ok := record[v.ArgumentRef]
		if !ok {
			return nil, fmt.Errorf("codec: missing required entry %q: %w", v.ArgumentRef, xerr.ErrMissingField)
		}

		return arg.Type.Encoding.Encode(val, ctx)

	case dictionary.FixedValueEntry:
		return bits.FixedValueFromHex(v.BinaryValue, v.SizeInBits)

	default:
		return nil, fmt.Errorf("codec: unrecognized entry variant %T: %w", entry, xerr.ErrUnsupportedFeature)
	}
}

// Decode resolves messageType (container or meta-command name) against
// buf, speculatively dispatching to inheritors when messageType is
// abstract and either bits remain or requireConcrete is set, per
// spec.md §4.4. A concrete messageType is never dispatched.
func (e *Encoder) Decode(messageType string, buf *bits.String, opts ...DecodeOption) (*Message, error) {
	var cfg decodeConfig
	for _, o := range opts {
		o(&cfg)
	}

	return e.decodeRecursive(messageType, buf, cfg)
}

func (e *Encoder) decodeRecursive(messageType string, buf *bits.String, cfg decodeConfig) (*Message, error) {
	abstract, err := e.isAbstract(messageType)
	if err != nil {
		return nil, err
	}

	record, remaining, err := e.decodeMessage(messageType, buf)
	if err != nil {
		return nil, err
	}

	if remaining.Len() == 0 && (!abstract || !cfg.requireConcrete) {
		return &Message{MessageType: messageType, Entries: record}, nil
	}

	if !abstract && remaining.Len() > 0 {
		return nil, fmt.Errorf("codec: %d bits remain undecoded after %q: %w", remaining.Len(), messageType, xerr.ErrSizeMismatch)
	}

	for _, name := range e.ss.FindInheritors(messageType) {
		msg, err := e.decodeRecursive(name, buf, cfg)
		if err != nil {
			continue
		}

		return msg, nil
	}

	return nil, fmt.Errorf("codec: no inheritor of %q could decode the remaining %d bits: %w", messageType, remaining.Len(), xerr.ErrAbstractResolutionFailure)
}

func (e *Encoder) isAbstract(messageType string) (bool, error) {
	if mc, err := e.ss.GetMetaCommand(messageType); err == nil {
		return mc.Abstract, nil
	}

	c, err := e.ss.GetContainer(messageType)
	if err != nil {
		return false, err
	}

	return c.Abstract, nil
}

func (e *Encoder) decodeMessage(messageType string, buf *bits.String) (map[string]any, *bits.String, error) {
	p, err := buildPlan(e.ss, messageType, e.maxInheritanceDepth)
	if err != nil {
		return nil, nil, err
	}

	restrictionIndex := make(map[string]dictionary.Comparison, len(p.restrictions))
	for _, r := range p.restrictions {
		restrictionIndex[r.ParameterRef] = r
	}

	argIndex, err := buildArgumentIndex(e.ss, messageType, e.maxInheritanceDepth)
	if err != nil {
		return nil, nil, err
	}

	record := make(map[string]any)
	cursor := 0

	for _, pe := range p.entries {
		if !conditionsSatisfied(record, pe.conditions) {
			continue
		}

		switch v := pe.entry.(type) {
		case dictionary.ParameterRefEntry:
			param, err := e.ss.GetParameter(v.ParameterRef)
			if err != nil {
				return nil, nil, err
			}

			ctx := recordContext(record)
			n, err := param.Type.Encoding.Size(ctx)
			if err != nil {
				return nil, nil, err
			}

			chunk, err := buf.Slice(cursor, cursor+n)
			if err != nil {
				return nil, nil, fmt.Errorf("codec: decoding %q: %w", v.ParameterRef, xerr.ErrSizeMismatch)
			}

			val, err := param.Type.Encoding.Decode(chunk, ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("codec: decoding %q: %w", v.ParameterRef, err)
			}

			record[v.ParameterRef] = val
			cursor += n

			if r, ok := restrictionIndex[v.ParameterRef]; ok {
				if fmt.Sprintf("%v", val) != r.Value {
					return nil, nil, fmt.Errorf("codec: decoded %q=%v violates restriction %q: %w", v.ParameterRef, val, r.Value, xerr.ErrRestrictionViolation)
				}
			}

		case dictionary.ArgumentRefEntry:
			arg, ok := argIndex[v.ArgumentRef]
			if !ok {
				return nil, nil, fmt.Errorf("codec: unknown argument %q: %w", v.ArgumentRef, xerr.ErrUnknownReference)
			}

			ctx := recordContext(record)
			n, err := arg.Type.Encoding.Size(ctx)
			if err != nil {
				return nil, nil, err
			}

			chunk, err := buf.Slice(cursor, cursor+n)
			if err != nil {
				return nil, nil, fmt.Errorf("codec: decoding %q: %w", v.ArgumentRef, xerr.ErrSizeMismatch)
			}

			val, err := arg.Type.Encoding.Decode(chunk, ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("codec: decoding %q: %w", v.ArgumentRef, err)
			}

			record[v.ArgumentRef] = val
			cursor += n

		case dictionary.FixedValueEntry:
			want, err := bits.FixedValueFromHex(v.BinaryValue, v.SizeInBits)
			if err != nil {
				return nil, nil, err
			}

			chunk, err := buf.Slice(cursor, cursor+v.SizeInBits)
			if err != nil {
				return nil, nil, fmt.Errorf("codec: decoding fixed value: %w", xerr.ErrSizeMismatch)
			}

			if !chunk.Equal(want) {
				return nil, nil, fmt.Errorf("codec: fixed value mismatch at bit %d: %w", cursor, xerr.ErrFixedValueMismatch)
			}

			cursor += v.SizeInBits

		default:
			return nil, nil, fmt.Errorf("codec: unrecognized entry variant %T: %w", pe.entry, xerr.ErrUnsupportedFeature)
		}
	}

	remaining, err := buf.Slice(cursor, buf.Len())
	if err != nil {
		return nil, nil, err
	}

	return record, remaining, nil
}

// castRestrictionValue converts a restriction's XML-origin string
// value into the native Go type its target parameter's encoding
// expects, per spec.md §4.4 step 2.
func castRestrictionValue(t *dictionary.Type, raw string) (any, error) {
	switch t.Kind {
	case dictionary.KindInteger, dictionary.KindEnumerated, dictionary.KindAbsoluteTime:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("codec: restriction value %q is not an integer: %w", raw, xerr.ErrTypeMismatch)
		}

		return n, nil

	case dictionary.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("codec: restriction value %q is not a float: %w", raw, xerr.ErrTypeMismatch)
		}

		return f, nil

	case dictionary.KindBoolean:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b, nil
		}

		return raw, nil

	case dictionary.KindString:
		return raw, nil

	case dictionary.KindBinary:
		b, err := bits.FromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("codec: restriction value %q is not valid hex: %w", raw, xerr.ErrTypeMismatch)
		}

		return b, nil

	default:
		return nil, fmt.Errorf("codec: restriction on type kind %d is unsupported: %w", t.Kind, xerr.ErrUnsupportedFeature)
	}
}
