package workflowgraph

import (
	"errors"
	"fmt"
	"strings"
)

const (
	nodeKindConflictTemplateConstant = "node %s already registered as %s, cannot register as %s"
	unknownNodeKindTemplateConstant  = "node %s has unsupported kind %q"
	unknownSourceTemplateConstant    = "edge source %s is not a node of the graph"
	unknownTargetTemplateConstant    = "edge target %s is not a node of the graph"
)

// ErrNodeIdentifierMissing indicates an attempt to register a node without an identifier.
var ErrNodeIdentifierMissing = errors.New("node identifier must be non-empty")

// Reader exposes the read capabilities needed to inspect a workflow graph.
type Reader interface {
	Nodes() []Node
	InDegree(identifier string) int
}

// Graph is a directed multigraph with deterministic node ordering.
type Graph struct {
	orderedIdentifiers []string
	nodes              map[string]Node
	incoming           map[string][]Edge
	outgoing           map[string][]Edge
	edgeCount          int
}

// NewGraph constructs an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]Node),
		incoming: make(map[string][]Edge),
		outgoing: make(map[string][]Edge),
	}
}

// AddNode registers a node. Re-registering an identifier with the same kind is a no-op.
func (graph *Graph) AddNode(node Node) error {
	trimmedIdentifier := strings.TrimSpace(node.Identifier)
	if len(trimmedIdentifier) == 0 {
		return ErrNodeIdentifierMissing
	}
	if !node.Kind.Valid() {
		return fmt.Errorf(unknownNodeKindTemplateConstant, trimmedIdentifier, node.Kind)
	}
	node.Identifier = trimmedIdentifier

	if existingNode, exists := graph.nodes[trimmedIdentifier]; exists {
		if existingNode.Kind != node.Kind {
			return fmt.Errorf(nodeKindConflictTemplateConstant, trimmedIdentifier, existingNode.Kind, node.Kind)
		}
		return nil
	}

	graph.nodes[trimmedIdentifier] = node
	graph.orderedIdentifiers = append(graph.orderedIdentifiers, trimmedIdentifier)
	return nil
}

// AddEdge records an edge from source to target. Parallel edges are preserved.
func (graph *Graph) AddEdge(sourceIdentifier string, targetIdentifier string) error {
	if _, exists := graph.nodes[sourceIdentifier]; !exists {
		return fmt.Errorf(unknownSourceTemplateConstant, sourceIdentifier)
	}
	if _, exists := graph.nodes[targetIdentifier]; !exists {
		return fmt.Errorf(unknownTargetTemplateConstant, targetIdentifier)
	}

	edge := Edge{SourceIdentifier: sourceIdentifier, TargetIdentifier: targetIdentifier}
	graph.outgoing[sourceIdentifier] = append(graph.outgoing[sourceIdentifier], edge)
	graph.incoming[targetIdentifier] = append(graph.incoming[targetIdentifier], edge)
	graph.edgeCount++
	return nil
}

// Node returns the node registered under identifier.
func (graph *Graph) Node(identifier string) (Node, bool) {
	if graph == nil {
		return Node{}, false
	}
	node, exists := graph.nodes[identifier]
	return node, exists
}

// Nodes returns every node in insertion order.
func (graph *Graph) Nodes() []Node {
	if graph == nil {
		return nil
	}
	nodes := make([]Node, 0, len(graph.orderedIdentifiers))
	for _, identifier := range graph.orderedIdentifiers {
		nodes = append(nodes, graph.nodes[identifier])
	}
	return nodes
}

// Processes returns the process nodes in insertion order.
func (graph *Graph) Processes() []Node {
	if graph == nil {
		return nil
	}
	processes := make([]Node, 0)
	for _, identifier := range graph.orderedIdentifiers {
		if node := graph.nodes[identifier]; node.IsProcess() {
			processes = append(processes, node)
		}
	}
	return processes
}

// InDegree counts the edges ending at identifier.
func (graph *Graph) InDegree(identifier string) int {
	if graph == nil {
		return 0
	}
	return len(graph.incoming[identifier])
}

// IncomingEdges returns the edges ending at identifier in insertion order.
func (graph *Graph) IncomingEdges(identifier string) []Edge {
	if graph == nil {
		return nil
	}
	return append([]Edge{}, graph.incoming[identifier]...)
}

// OutgoingEdges returns the edges starting at identifier in insertion order.
func (graph *Graph) OutgoingEdges(identifier string) []Edge {
	if graph == nil {
		return nil
	}
	return append([]Edge{}, graph.outgoing[identifier]...)
}

// NodeCount returns the number of registered nodes.
func (graph *Graph) NodeCount() int {
	if graph == nil {
		return 0
	}
	return len(graph.orderedIdentifiers)
}

// EdgeCount returns the number of recorded edges, parallel edges included.
func (graph *Graph) EdgeCount() int {
	if graph == nil {
		return 0
	}
	return graph.edgeCount
}
