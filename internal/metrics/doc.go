// Package metrics records build metrics for sitebuilder.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection needs no nil checks at call sites:
//
//	b := site.NewBuilder(cfg, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on a caller-supplied registry.
// A one-shot build has no scrape endpoint, so WriteTextfile dumps the
// registry in the node_exporter textfile format instead.
package metrics
