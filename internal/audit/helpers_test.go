package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/isapool/internal/audit"
	"github.com/temirov/isapool/internal/isa"
	"github.com/temirov/isapool/internal/pooling"
	"github.com/temirov/isapool/internal/workflowgraph"
)

const (
	testInputPathConstant          = "/tmp/i_pooled.json"
	testSecondInputPathConstant    = "/tmp/i_plain.json"
	testStudyFilenameConstant      = "s_pooled.txt"
	testAssayFilenameConstant      = "a_plain.txt"
	testPooledProcessConstant      = "#process/pool"
	testFirstSourceConstant        = "#source/donor-1"
	testSecondSourceConstant       = "#source/donor-2"
	testPlainProcessConstant       = "#process/extract"
	testCSVHeaderConstant          = "source,container,process_identifier\n"
	testPooledCSVRowConstant       = "/tmp/i_pooled.json,s_pooled.txt,#process/pool\n"
	testDebugCheckingOutputPattern = "DEBUG: checking %s\n"
)

var errDocumentUnreadable = errors.New("document unreadable")

type investigationLoaderStub struct {
	investigations map[string]*isa.Investigation
	requestedPaths []string
}

func (stub *investigationLoaderStub) LoadFile(filePath string) (*isa.Investigation, error) {
	stub.requestedPaths = append(stub.requestedPaths, filePath)
	investigation, found := stub.investigations[filePath]
	if !found {
		return nil, errDocumentUnreadable
	}
	return investigation, nil
}

type auditorFactoryRecorder struct {
	receivedParallelism int
}

func (recorder *auditorFactoryRecorder) build(parallelism int, logger *zap.Logger) audit.PoolingAuditor {
	recorder.receivedParallelism = parallelism
	return pooling.NewAuditor(pooling.WithParallelism(parallelism), pooling.WithLogger(logger))
}

func buildGraph(testInstance *testing.T, nodes []workflowgraph.Node, edges []workflowgraph.Edge) *workflowgraph.Graph {
	testInstance.Helper()

	graph := workflowgraph.NewGraph()
	for _, node := range nodes {
		require.NoError(testInstance, graph.AddNode(node))
	}
	for _, edge := range edges {
		require.NoError(testInstance, graph.AddEdge(edge.SourceIdentifier, edge.TargetIdentifier))
	}
	return graph
}

func pooledInvestigation(testInstance *testing.T) *isa.Investigation {
	testInstance.Helper()

	studyGraph := buildGraph(testInstance,
		[]workflowgraph.Node{
			{Identifier: testFirstSourceConstant, Kind: workflowgraph.NodeKindMaterial},
			{Identifier: testSecondSourceConstant, Kind: workflowgraph.NodeKindMaterial},
			{Identifier: testPooledProcessConstant, Kind: workflowgraph.NodeKindProcess},
		},
		[]workflowgraph.Edge{
			{SourceIdentifier: testFirstSourceConstant, TargetIdentifier: testPooledProcessConstant},
			{SourceIdentifier: testSecondSourceConstant, TargetIdentifier: testPooledProcessConstant},
		},
	)

	return &isa.Investigation{
		Identifier: "i_pooled",
		Studies: []*isa.Study{
			{
				Identifier: "s_pooled",
				Filename:   testStudyFilenameConstant,
				Graph:      studyGraph,
				Assays: []*isa.Assay{
					{Identifier: "a_plain", Filename: testAssayFilenameConstant, Graph: plainGraph(testInstance)},
				},
			},
		},
	}
}

func plainInvestigation(testInstance *testing.T) *isa.Investigation {
	testInstance.Helper()

	return &isa.Investigation{
		Identifier: "i_plain",
		Studies: []*isa.Study{
			{Identifier: "s_plain", Filename: "s_plain.txt", Graph: plainGraph(testInstance)},
		},
	}
}

func plainGraph(testInstance *testing.T) *workflowgraph.Graph {
	testInstance.Helper()

	return buildGraph(testInstance,
		[]workflowgraph.Node{
			{Identifier: testFirstSourceConstant, Kind: workflowgraph.NodeKindMaterial},
			{Identifier: testPlainProcessConstant, Kind: workflowgraph.NodeKindProcess},
		},
		[]workflowgraph.Edge{
			{SourceIdentifier: testFirstSourceConstant, TargetIdentifier: testPlainProcessConstant},
		},
	)
}
