// Package observability exposes the Prometheus collectors of the presence service.
//
// Collectors are registered on an explicit registerer so that every test can
// use a fresh prometheus.NewRegistry().
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Connections    prometheus.Gauge
	OnlineUsers    prometheus.Gauge
	Rooms          prometheus.Gauge
	CommandsTotal  *prometheus.CounterVec
	ErrorsTotal    *prometheus.CounterVec
	EventsTotal    *prometheus.CounterVec
	DroppedTotal   *prometheus.CounterVec
	ProcessCPU     prometheus.Gauge
	ProcessMemory  prometheus.Gauge
	WorkerRestarts *prometheus.CounterVec
	ChannelLength  *prometheus.GaugeVec
	ChannelCap     *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presence_connections",
			Help: "Number of live socket connections",
		}),
		OnlineUsers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presence_online_users",
			Help: "Number of users in the global presence set",
		}),
		Rooms: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presence_rooms",
			Help: "Number of non-empty show rooms",
		}),
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_commands_total",
			Help: "Inbound socket commands handled, by command name",
		}, []string{"command"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_command_errors_total",
			Help: "Inbound socket commands answered with an error event, by command name",
		}, []string{"command"}),
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_events_total",
			Help: "Outbound events pushed to connection queues, by event name",
		}, []string{"event"}),
		DroppedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_events_dropped_total",
			Help: "Outbound events dropped because the connection was gone or its queue full",
		}, []string{"event"}),
		ProcessCPU: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presence_process_cpu_percent",
			Help: "CPU usage of the service process",
		}),
		ProcessMemory: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presence_process_memory_percent",
			Help: "Memory usage of the service process",
		}),
		WorkerRestarts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_worker_restarts_total",
			Help: "Supervised worker restarts after a crash, by worker name",
		}, []string{"worker"}),
		ChannelLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "presence_channel_length",
			Help: "Items waiting in an internal channel, by channel name",
		}, []string{"channel"}),
		ChannelCap: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "presence_channel_capacity",
			Help: "Buffer size of an internal channel, by channel name",
		}, []string{"channel"}),
	}
}

// Observe copies a registry snapshot into the gauges.
func (m *Metrics) Observe(connections, online, rooms int) {
	m.Connections.Set(float64(connections))
	m.OnlineUsers.Set(float64(online))
	m.Rooms.Set(float64(rooms))
}
