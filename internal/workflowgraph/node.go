package workflowgraph

// NodeKind discriminates the node variants of a workflow graph.
type NodeKind string

// Supported node kinds.
const (
	NodeKindMaterial NodeKind = NodeKind("material")
	NodeKindDataFile NodeKind = NodeKind("data_file")
	NodeKindProcess  NodeKind = NodeKind("process")
)

// Node is a single vertex of a workflow graph. Identity is by Identifier.
type Node struct {
	Identifier string
	Kind       NodeKind
	Label      string
}

// IsProcess reports whether the node represents an executed workflow step.
func (node Node) IsProcess() bool {
	return node.Kind == NodeKindProcess
}

// Edge connects a producing node to the node consuming its output.
type Edge struct {
	SourceIdentifier string
	TargetIdentifier string
}

// Valid reports whether the kind is one of the supported node kinds.
func (kind NodeKind) Valid() bool {
	switch kind {
	case NodeKindMaterial, NodeKindDataFile, NodeKindProcess:
		return true
	default:
		return false
	}
}
