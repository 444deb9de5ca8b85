package uuidutil

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chaisql/bsonuuid"
	"github.com/cockroachdb/errors"
)

// Profile is the UUID configuration of a connection: the ambient
// representation and the field codecs.
type Profile struct {
	Ambient bsonuuid.Representation
	Fields  map[string]bsonuuid.Representation
}

type fileProfile struct {
	UUIDRepresentation bsonuuid.Representation            `toml:"uuid_representation"`
	Fields             map[string]bsonuuid.Representation `toml:"fields"`
}

// LoadProfile reads a profile from a TOML file:
//
//	uuid_representation = "javaLegacy"
//
//	[fields]
//	legacy_id = "csharpLegacy"
//
// An empty path returns an empty profile.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	if path == "" {
		return p, nil
	}

	var raw fileProfile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "load profile %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, errors.Newf("load profile %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("uuid_representation") {
		p.Ambient = raw.UUIDRepresentation
	}

	if meta.IsDefined("fields") {
		p.Fields = raw.Fields
	}

	return p, nil
}

// Registry builds the registry described by the profile.
func (p Profile) Registry() (*bsonuuid.Registry, error) {
	fields := make(map[string]bsonuuid.Codec, len(p.Fields))
	for name, r := range p.Fields {
		fields[name] = bsonuuid.NewCodec(r)
	}

	return bsonuuid.NewRegistry(p.Ambient, fields)
}
