package yams

// Tag identifies a node's YAML type, either one of the core-schema
// primitives or an arbitrary explicit URI. The named primitives mirror
// the standard tag:yaml.org,2002:* tags used throughout the YAML core
// schema.
type Tag string

const (
	NullTag      Tag = "tag:yaml.org,2002:null"
	BoolTag      Tag = "tag:yaml.org,2002:bool"
	IntTag       Tag = "tag:yaml.org,2002:int"
	FloatTag     Tag = "tag:yaml.org,2002:float"
	StrTag       Tag = "tag:yaml.org,2002:str"
	TimestampTag Tag = "tag:yaml.org,2002:timestamp"
	BinaryTag    Tag = "tag:yaml.org,2002:binary"
	SeqTag       Tag = "tag:yaml.org,2002:seq"
	MapTag       Tag = "tag:yaml.org,2002:map"
)
