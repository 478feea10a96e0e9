package schema

// Schema is the result of parsing one or more CND documents: the namespace
// prefixes declared by the documents and the node types they define, in
// declaration order.
type Schema struct {
	Namespaces map[string]string
	NodeTypes  []*NodeType
}

func NewSchema() *Schema {
	return &Schema{
		Namespaces: map[string]string{},
		NodeTypes:  []*NodeType{},
	}
}

// GetNodeType returns the node type with the given name, or nil.
func (s *Schema) GetNodeType(name string) *NodeType {
	for _, nt := range s.NodeTypes {
		if nt.Name == name {
			return nt
		}
	}
	return nil
}

// NodeType is a single node type definition. Properties and ChildNodes keep
// their declaration order, since consumers resolve defaults and primary items
// in that order.
type NodeType struct {
	Name            string
	Supertypes      []string
	Abstract        bool
	Mixin           bool
	Orderable       bool
	Queryable       bool
	PrimaryItemName string
	Properties      []*PropertyDefinition
	ChildNodes      []*ChildNodeDefinition
}

// HasSupertype returns whether the node type declares the given supertype.
func (n *NodeType) HasSupertype(name string) bool {
	for _, s := range n.Supertypes {
		if s == name {
			return true
		}
	}
	return false
}

// PropertyDefinition is a property entry within a node type. A Name of "*"
// declares a residual definition matching any property name.
type PropertyDefinition struct {
	Name               string
	RequiredType       PropertyType
	DefaultValues      []string
	ValueConstraints   []string
	Autocreated        bool
	Mandatory          bool
	Protected          bool
	Multiple           bool
	FullTextSearchable bool
	QueryOrderable     bool
	OnParentVersion    OnParentVersion
}

// ChildNodeDefinition is a child node entry within a node type. A Name of "*"
// declares a residual definition matching any child name.
type ChildNodeDefinition struct {
	Name             string
	RequiredTypes    []string
	DefaultType      string
	Autocreated      bool
	Mandatory        bool
	Protected        bool
	SameNameSiblings bool
	OnParentVersion  OnParentVersion
}
