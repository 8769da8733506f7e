// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes the server's Prometheus instrumentation, scraped
// over the admin HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ServerStats is the full set of counters/gauges/histograms the server
// maintains across every connection goroutine.
type ServerStats struct {
	TotalConnections *prometheus.CounterVec
	CurrConnections  *prometheus.GaugeVec

	ConnectionsClientEof *prometheus.CounterVec
	ConnectionsClientErr *prometheus.CounterVec

	Commands        *prometheus.CounterVec
	CommandLatency  *prometheus.HistogramVec
	DecodeErrors    *prometheus.CounterVec
	InvalidCommands *prometheus.CounterVec
}

// Global is the process-wide instance every connection goroutine reports
// into.
var Global ServerStats

func init() {
	Global = New("respd")
}

// New builds a fresh ServerStats under namespace and registers it with the
// default Prometheus registry; calling it again with a namespace already
// registered panics.
func New(namespace string) ServerStats {
	stats := ServerStats{
		TotalConnections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "total_connections",
			Help:      "total TCP connections accepted",
		}, nil),
		CurrConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "curr_connections",
			Help:      "currently open connections",
		}, nil),
		ConnectionsClientEof: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_client_eof",
			Help:      "connections closed because the client disconnected",
		}, nil),
		ConnectionsClientErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_client_err",
			Help:      "connections closed due to a read/write/decode error",
		}, nil),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "commands executed, by name",
		}, []string{"cmd"}),
		CommandLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_latency_seconds",
			Help:      "time spent executing a command against the store",
			Buckets:   prometheus.DefBuckets,
		}, []string{"cmd"}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "connections closed by a read or decode error, by error",
		}, []string{"reason"}),
		InvalidCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_commands_total",
			Help:      "decoded frames that did not parse into a known command",
		}, nil),
	}
	prometheus.MustRegister(
		stats.TotalConnections, stats.CurrConnections,
		stats.ConnectionsClientEof, stats.ConnectionsClientErr,
		stats.Commands, stats.CommandLatency, stats.DecodeErrors, stats.InvalidCommands,
	)
	return stats
}

// ConnOpened records a freshly accepted connection.
func (s *ServerStats) ConnOpened() {
	s.TotalConnections.WithLabelValues().Inc()
	s.CurrConnections.WithLabelValues().Inc()
}

// ConnClosed records a connection going away, either because the client
// disconnected cleanly (eof=true) or some error ended it (eof=false).
func (s *ServerStats) ConnClosed(eof bool) {
	s.CurrConnections.WithLabelValues().Dec()
	if eof {
		s.ConnectionsClientEof.WithLabelValues().Inc()
	} else {
		s.ConnectionsClientErr.WithLabelValues().Inc()
	}
}

// CommandExecuted records one command dispatch and its execution latency.
func (s *ServerStats) CommandExecuted(cmd string, seconds float64) {
	s.Commands.WithLabelValues(cmd).Inc()
	s.CommandLatency.WithLabelValues(cmd).Observe(seconds)
}

// DecodeError records a connection ended by a read or decode error,
// labelled with the error's message.
func (s *ServerStats) DecodeError(reason string) {
	s.DecodeErrors.WithLabelValues(reason).Inc()
}

// InvalidCommand records a frame that decoded fine but didn't parse into a
// known command.
func (s *ServerStats) InvalidCommand() {
	s.InvalidCommands.WithLabelValues().Inc()
}
