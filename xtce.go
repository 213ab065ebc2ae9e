// Package xtce provides a bit-accurate encoder/decoder for telemetry and
// telecommand messages described by an XTCE-style space system dictionary.
//
// A space system is built programmatically: parameter and argument types,
// parameters, containers, and meta-commands are added to a
// dictionary.SpaceSystem, then Finalize is called once to validate the
// type and inheritance references and run the eager passes (array
// element types, parameter type bindings, the inheritance reverse-index). Parsing the dictionary
// from XTCE XML is an out-of-scope external concern; this package starts
// from the already-built dictionary.
//
// # Core Features
//
//   - Bit-accurate, MSB-first, big-endian wire codec with no implicit
//     framing or compression
//   - Container and meta-command inheritance, including abstract
//     containers resolved by restriction at decode time
//   - Integer, boolean, string, binary, array, and calibrated numeric
//     data encodings
//   - Dynamic field sizing and array bounds resolved against
//     already-decoded fields
//
// # Basic Usage
//
// Building a dictionary and round-tripping a message:
//
//	ss := xtce.NewSpaceSystem("ccsds")
//	ss.AddParameterType(&dictionary.Type{
//	    Name: "uint16_t", Kind: dictionary.KindInteger,
//	    Encoding: &encoding.IntegerEncoding{SizeInBits: 16, Signed: encoding.Unsigned},
//	})
//	ss.AddParameter(&dictionary.Parameter{Name: "Length", TypeRef: "uint16_t"})
//	ss.AddContainer(&dictionary.Container{
//	    Name: "Header",
//	    EntryList: []dictionary.Entry{
//	        dictionary.ParameterRefEntry{ParameterRef: "Length"},
//	    },
//	})
//	if err := ss.Finalize(); err != nil {
//	    log.Fatal(err)
//	}
//
//	enc := xtce.NewEncoder(ss)
//	wire, err := enc.Encode(&codec.Message{
//	    MessageType: "Header",
//	    Entries:     map[string]any{"Length": int64(2)},
//	})
//
//	msg, err := enc.Decode("Header", wire)
//
// # Package Structure
//
// This package is a thin top-level convenience wrapper. For the full data
// model and construction API, see package dictionary; for the planner and
// codec internals, see package codec; for the individual data encodings,
// see package encoding.
package xtce

import (
	"github.com/antaris-inc/go-xtce/codec"
	"github.com/antaris-inc/go-xtce/dictionary"
)

// SpaceSystem is the root dictionary type: see dictionary.SpaceSystem.
type SpaceSystem = dictionary.SpaceSystem

// Message pairs a resolved message type with its decoded or to-be-encoded
// field values: see codec.Message.
type Message = codec.Message

// Encoder drives the entry planner and bit codec against one SpaceSystem:
// see codec.Encoder.
type Encoder = codec.Encoder

// NewSpaceSystem returns an empty, mutable SpaceSystem ready to be
// populated via its Add* methods, then finalized with Finalize.
func NewSpaceSystem(name string) *SpaceSystem {
	return dictionary.NewSpaceSystem(name)
}

// NewEncoder returns an Encoder bound to ss, which must already have had
// Finalize called on it successfully.
//
// Available options:
//   - codec.WithMaxInheritanceDepth(n)
func NewEncoder(ss *SpaceSystem, opts ...codec.Option) *Encoder {
	return codec.NewEncoder(ss, opts...)
}
