package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FSOperations counts filesystem queries by filesystem, operation and outcome
	FSOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "winpath_fs_operations_total",
		Help: "The number of filesystem queries issued while resolving paths",
	}, []string{"fs", "operation", "success"})

	// RealPathTotal counts canonicalizations by outcome
	RealPathTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "winpath_realpath_total",
		Help: "The number of paths canonicalized, by outcome",
	}, []string{"outcome"})

	// RealPathDuration records how long a single canonicalization took
	RealPathDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "winpath_realpath_duration_seconds",
		Help:    "Time spent canonicalizing a single path",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	// SymlinksFollowed counts link targets spliced into a walk
	SymlinksFollowed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "winpath_symlinks_followed_total",
		Help: "The number of symbolic links followed during canonicalization",
	})

	// SymlinkCycles counts walks that ran into a link already being expanded
	SymlinkCycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "winpath_symlink_cycles_total",
		Help: "The number of symbolic link cycles detected during canonicalization",
	})

	// BrokenSymlinks counts link targets that turned out not to exist
	BrokenSymlinks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "winpath_broken_symlinks_total",
		Help: "The number of symbolic links with a missing target met during canonicalization",
	})
)

// MustRegisterWith registers all collectors with reg
func MustRegisterWith(reg prometheus.Registerer) {
	reg.MustRegister(
		FSOperations,
		RealPathTotal,
		RealPathDuration,
		SymlinksFollowed,
		SymlinkCycles,
		BrokenSymlinks,
	)
}

func init() {
	MustRegisterWith(prometheus.DefaultRegisterer)
}
