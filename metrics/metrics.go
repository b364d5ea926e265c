package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ResolverOutcomes counts terminal resolution outcomes, labeled with
	// `file`, `fallback_file`, `fallback_func` or `absent`
	ResolverOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gitlab_pages_resolver_outcomes_total",
		Help: "The number of requests resolved per outcome",
	}, []string{"outcome"})

	// ResolverDecodeFailures counts request paths rejected while percent-decoding
	ResolverDecodeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gitlab_pages_resolver_decode_failures_total",
		Help: "The number of request paths rejected by the path decoder",
	}, []string{"reason"})

	// ResolverContainmentFailures counts candidate paths that resolved outside of the root
	ResolverContainmentFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gitlab_pages_resolver_outside_root_total",
		Help: "The number of request paths that resolved outside of the configured root",
	})

	// VFSOperations metric for VFS operations (lstat, open)
	VFSOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gitlab_pages_resolver_vfs_operations_total",
		Help: "The number of VFS operations",
	}, []string{"vfs_name", "operation", "success"})

	// ServedFileSize metric for file size of served files
	ServedFileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gitlab_pages_resolver_served_file_size_bytes",
		Help:    "The size in bytes of files served by the resolver",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
	})
)

func init() {
	prometheus.MustRegister(
		ResolverOutcomes,
		ResolverDecodeFailures,
		ResolverContainmentFailures,
		VFSOperations,
		ServedFileSize,
	)
}
