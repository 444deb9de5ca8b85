/*
Package bsonuuid reads and writes UUIDs stored in binary values of a BSON
style document format.

Representations

Drivers written over the years stored UUIDs with different byte orders and
different binary subtypes. A Representation names one of these conventions:

	Standard       network byte order, subtype 4
	CSharpLegacy   .NET Guid byte order, subtype 3
	JavaLegacy     both 64 bit halves little-endian, subtype 3
	PythonLegacy   network byte order, subtype 3

Unspecified means that the representation is taken from the context of the
call. EncodeLayout and DecodeLayout perform the raw byte permutation of each
representation and never look at subtypes.

Ambient and explicit representations

A connection carries an ambient representation, and application code may
attach a Codec with its own representation to a field. Resolve decides which
one applies: a specified explicit representation always wins, otherwise the
ambient one is used, and when both are Unspecified the operation fails with
ErrUnresolvedRepresentation. The choice is made again at every call.

	c := bsonuuid.NewCodec(bsonuuid.JavaLegacy)
	b, err := c.Encode(bsonuuid.Standard, id) // written as javaLegacy, subtype 3

A Registry holds the field codecs of a connection and rejects, when it is
built, field codecs that can never be resolved.

Errors

Decoding distinguishes corrupt data from a wrong interpretation: a payload
that is not 16 bytes long fails with a MalformedPayloadError, a payload whose
subtype is not the one written by the resolved representation fails with a
SubtypeMismatchError. Neither is ever recovered by reinterpreting the bytes.
*/
package bsonuuid
