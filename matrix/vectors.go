package matrix

import (
	"github.com/chaisql/bsonuuid"
	"github.com/google/uuid"
)

// Fixture is the UUID every fixed vector is built from.
var Fixture = uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")

// A Vector is the known encoding of Fixture under one representation.
type Vector struct {
	Representation bsonuuid.Representation
	Binary         bsonuuid.Binary
}

// Vectors lists the encoding of Fixture under every representation, as
// written by the drivers each representation comes from.
var Vectors = []Vector{
	{
		Representation: bsonuuid.Standard,
		Binary: bsonuuid.Binary{
			Subtype: bsonuuid.SubtypeUUID,
			Data:    []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		},
	},
	{
		Representation: bsonuuid.CSharpLegacy,
		Binary: bsonuuid.Binary{
			Subtype: bsonuuid.SubtypeUUIDLegacy,
			Data:    []byte{0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		},
	},
	{
		Representation: bsonuuid.JavaLegacy,
		Binary: bsonuuid.Binary{
			Subtype: bsonuuid.SubtypeUUIDLegacy,
			Data:    []byte{0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00, 0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88},
		},
	},
	{
		Representation: bsonuuid.PythonLegacy,
		Binary: bsonuuid.Binary{
			Subtype: bsonuuid.SubtypeUUIDLegacy,
			Data:    []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		},
	},
}

// VectorOf returns the vector of r.
func VectorOf(r bsonuuid.Representation) (Vector, bool) {
	for _, v := range Vectors {
		if v.Representation == r {
			return v, true
		}
	}

	return Vector{}, false
}

// A Misread is the UUID obtained by reading the bytes of Fixture written
// under Written with the byte layout of Read, ignoring the subtype.
type Misread struct {
	Written bsonuuid.Representation
	Read    bsonuuid.Representation
	Value   uuid.UUID
}

// Misreads lists every ordered pair of distinct representations.
// Standard and PythonLegacy share a byte layout, so between them the value
// survives and only the subtype tells them apart.
var Misreads = []Misread{
	{bsonuuid.Standard, bsonuuid.CSharpLegacy, uuid.MustParse("33221100-5544-7766-8899-aabbccddeeff")},
	{bsonuuid.Standard, bsonuuid.JavaLegacy, uuid.MustParse("77665544-3322-1100-ffee-ddccbbaa9988")},
	{bsonuuid.Standard, bsonuuid.PythonLegacy, Fixture},

	{bsonuuid.CSharpLegacy, bsonuuid.Standard, uuid.MustParse("33221100-5544-7766-8899-aabbccddeeff")},
	{bsonuuid.CSharpLegacy, bsonuuid.JavaLegacy, uuid.MustParse("66774455-0011-2233-ffee-ddccbbaa9988")},
	{bsonuuid.CSharpLegacy, bsonuuid.PythonLegacy, uuid.MustParse("33221100-5544-7766-8899-aabbccddeeff")},

	{bsonuuid.JavaLegacy, bsonuuid.Standard, uuid.MustParse("77665544-3322-1100-ffee-ddccbbaa9988")},
	{bsonuuid.JavaLegacy, bsonuuid.CSharpLegacy, uuid.MustParse("44556677-2233-0011-ffee-ddccbbaa9988")},
	{bsonuuid.JavaLegacy, bsonuuid.PythonLegacy, uuid.MustParse("77665544-3322-1100-ffee-ddccbbaa9988")},

	{bsonuuid.PythonLegacy, bsonuuid.Standard, Fixture},
	{bsonuuid.PythonLegacy, bsonuuid.CSharpLegacy, uuid.MustParse("33221100-5544-7766-8899-aabbccddeeff")},
	{bsonuuid.PythonLegacy, bsonuuid.JavaLegacy, uuid.MustParse("77665544-3322-1100-ffee-ddccbbaa9988")},
}
