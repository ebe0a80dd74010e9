package ports

import "go.trai.ch/rehost/internal/core/domain"

// Metrics defines the interface for exporting run statistics.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// Export records report and writes the metrics to path.
	Export(path string, report *domain.Report) error
}
