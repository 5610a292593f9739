package mergepatch

import "github.com/prometheus/client_golang/prometheus"

func RequestsTotal(m *Metrics) *prometheus.CounterVec { return m.requests }
