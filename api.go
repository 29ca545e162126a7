package yams

// Dump represents each of objects and serializes them as a stream of
// YAML documents, returning the accumulated text.
func Dump(objects []interface{}, opts Options) (string, error) {
	nodes, err := RepresentAll(objects, opts)
	if err != nil {
		return "", err
	}
	return Serialize(nodes, opts)
}

// DumpOne is the single-document variant of Dump.
func DumpOne(object interface{}, opts Options) (string, error) {
	node, err := Represent(object, opts)
	if err != nil {
		return "", err
	}
	return SerializeOne(node, opts)
}

// Serialize emits nodes as a stream of documents, skipping
// representation: callers already hold Nodes.
func Serialize(nodes []*Node, opts Options) (string, error) {
	e := NewEmitter(opts)
	if err := e.Open(); err != nil {
		return "", err
	}
	for _, n := range nodes {
		if err := e.Serialize(n); err != nil {
			return "", err
		}
	}
	if err := e.Close(); err != nil {
		return "", err
	}
	return string(e.Data()), nil
}

// SerializeOne is the single-document variant of Serialize.
func SerializeOne(node *Node, opts Options) (string, error) {
	return Serialize([]*Node{node}, opts)
}
