package pooling_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/isapool/internal/workflowgraph"
)

// processFixture describes a process node and the number of edges feeding it.
type processFixture struct {
	identifier string
	inDegree   int
}

// buildPoolingGraph creates a graph in which every process receives its
// in-degree from dedicated material nodes, inserted in fixture order.
func buildPoolingGraph(testInstance *testing.T, processes ...processFixture) *workflowgraph.Graph {
	testInstance.Helper()

	graph := workflowgraph.NewGraph()
	for _, process := range processes {
		require.NoError(testInstance, graph.AddNode(workflowgraph.Node{Identifier: process.identifier, Kind: workflowgraph.NodeKindProcess}))
		for inputIndex := 0; inputIndex < process.inDegree; inputIndex++ {
			materialIdentifier := fmt.Sprintf("%s/input-%d", process.identifier, inputIndex)
			require.NoError(testInstance, graph.AddNode(workflowgraph.Node{Identifier: materialIdentifier, Kind: workflowgraph.NodeKindMaterial}))
			require.NoError(testInstance, graph.AddEdge(materialIdentifier, process.identifier))
		}
	}
	return graph
}
