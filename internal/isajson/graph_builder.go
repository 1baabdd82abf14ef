package isajson

import (
	"fmt"
	"strings"

	"github.com/temirov/isapool/internal/workflowgraph"
)

// buildProcessGraph links each process to its inputs and outputs. Nodes enter
// the graph in the order they are first linked, which fixes the visitation
// order seen by pooling detection.
func buildProcessGraph(catalog *entityCatalog, processSequence []processDocument) (*workflowgraph.Graph, error) {
	for processIndex := range processSequence {
		processIdentifier := strings.TrimSpace(processSequence[processIndex].Identifier)
		if len(processIdentifier) == 0 {
			return nil, fmt.Errorf(processIdentifierTemplateConstant, processIndex, ErrProcessIdentifierMissing)
		}
		processNode := workflowgraph.Node{
			Identifier: processIdentifier,
			Kind:       workflowgraph.NodeKindProcess,
			Label:      processSequence[processIndex].label(),
		}
		if existingNode, exists := catalog.resolve(processIdentifier); exists && !existingNode.IsProcess() {
			return nil, fmt.Errorf(processIdentifierConflictTemplateConstant, processIdentifier, existingNode.Kind)
		}
		catalog.nodes[processIdentifier] = processNode
	}

	graph := workflowgraph.NewGraph()
	builder := processGraphBuilder{catalog: catalog, graph: graph, chainedEdges: make(map[workflowgraph.Edge]struct{})}
	for _, process := range processSequence {
		if linkError := builder.linkProcess(process); linkError != nil {
			return nil, linkError
		}
	}

	return graph, nil
}

// processGraphBuilder records previousProcess and nextProcess links once,
// since both ends of a chain usually describe the same edge.
type processGraphBuilder struct {
	catalog      *entityCatalog
	graph        *workflowgraph.Graph
	chainedEdges map[workflowgraph.Edge]struct{}
}

func (builder processGraphBuilder) linkProcess(process processDocument) error {
	processIdentifier := strings.TrimSpace(process.Identifier)
	processNode, _ := builder.catalog.resolve(processIdentifier)
	if addError := builder.graph.AddNode(processNode); addError != nil {
		return addError
	}

	materialOutputs := make([]workflowgraph.Node, 0, len(process.Outputs))
	for _, output := range process.Outputs {
		outputNode, resolveError := builder.resolveReference(processIdentifier, output.Identifier)
		if resolveError != nil {
			return resolveError
		}
		if outputNode.Kind == workflowgraph.NodeKindDataFile {
			continue
		}
		materialOutputs = append(materialOutputs, outputNode)
	}

	switch {
	case len(materialOutputs) > 0:
		for _, outputNode := range materialOutputs {
			if linkError := builder.link(processNode, outputNode); linkError != nil {
				return linkError
			}
		}
	case process.NextProcess != nil && len(strings.TrimSpace(process.NextProcess.Identifier)) > 0:
		nextNode, resolveError := builder.resolveReference(processIdentifier, process.NextProcess.Identifier)
		if resolveError != nil {
			return resolveError
		}
		if linkError := builder.chain(processNode, nextNode); linkError != nil {
			return linkError
		}
	}

	switch {
	case len(process.Inputs) > 0:
		for _, input := range process.Inputs {
			inputNode, resolveError := builder.resolveReference(processIdentifier, input.Identifier)
			if resolveError != nil {
				return resolveError
			}
			if linkError := builder.link(inputNode, processNode); linkError != nil {
				return linkError
			}
		}
	case process.PreviousProcess != nil && len(strings.TrimSpace(process.PreviousProcess.Identifier)) > 0:
		previousNode, resolveError := builder.resolveReference(processIdentifier, process.PreviousProcess.Identifier)
		if resolveError != nil {
			return resolveError
		}
		if linkError := builder.chain(previousNode, processNode); linkError != nil {
			return linkError
		}
	}

	return nil
}

func (builder processGraphBuilder) resolveReference(processIdentifier string, referenceIdentifier string) (workflowgraph.Node, error) {
	node, found := builder.catalog.resolve(referenceIdentifier)
	if !found {
		return workflowgraph.Node{}, fmt.Errorf(unresolvedReferenceTemplateConstant, processIdentifier, referenceIdentifier, ErrUnresolvedReference)
	}
	return node, nil
}

func (builder processGraphBuilder) link(sourceNode workflowgraph.Node, targetNode workflowgraph.Node) error {
	if addError := builder.graph.AddNode(sourceNode); addError != nil {
		return addError
	}
	if addError := builder.graph.AddNode(targetNode); addError != nil {
		return addError
	}
	return builder.graph.AddEdge(sourceNode.Identifier, targetNode.Identifier)
}

func (builder processGraphBuilder) chain(sourceNode workflowgraph.Node, targetNode workflowgraph.Node) error {
	chainedEdge := workflowgraph.Edge{SourceIdentifier: sourceNode.Identifier, TargetIdentifier: targetNode.Identifier}
	if _, alreadyChained := builder.chainedEdges[chainedEdge]; alreadyChained {
		return nil
	}
	builder.chainedEdges[chainedEdge] = struct{}{}
	return builder.link(sourceNode, targetNode)
}
