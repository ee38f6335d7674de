/*
Package observability provides optional Prometheus instrumentation for the
admin core: classification run counts, menu churn counters, and a gauge for
the current menu size. Everything is opt-in; the core runs unchanged with a
nil Metrics.
*/
package observability
