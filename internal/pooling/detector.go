package pooling

import (
	"go.uber.org/zap"

	"github.com/temirov/isapool/internal/workflowgraph"
)

const (
	poolingDetectedMessageConstant = "possible process pooling detected"
	logFieldProcessIDConstant      = "process_id"
	logFieldInDegreeConstant       = "in_degree"
	poolingInDegreeThreshold       = 1
)

// Detector identifies pooled process nodes within a single workflow graph.
type Detector struct {
	logger *zap.Logger
}

// NewDetector constructs a Detector that reports detections to the provided logger.
func NewDetector(logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{logger: logger}
}

// Detect returns the identifiers of process nodes whose in-degree exceeds one,
// ordered by the graph's node iteration order.
func (detector *Detector) Detect(graph workflowgraph.Reader) []string {
	pooledProcesses := make([]string, 0)
	if graph == nil {
		return pooledProcesses
	}

	for _, node := range graph.Nodes() {
		if !node.IsProcess() {
			continue
		}
		inDegree := graph.InDegree(node.Identifier)
		if inDegree <= poolingInDegreeThreshold {
			continue
		}
		detector.resolveLogger().Info(
			poolingDetectedMessageConstant,
			zap.String(logFieldProcessIDConstant, node.Identifier),
			zap.Int(logFieldInDegreeConstant, inDegree),
		)
		pooledProcesses = append(pooledProcesses, node.Identifier)
	}

	return pooledProcesses
}

func (detector *Detector) resolveLogger() *zap.Logger {
	if detector == nil || detector.logger == nil {
		return zap.NewNop()
	}
	return detector.logger
}
