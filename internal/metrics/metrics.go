package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what the capture loop sees and what the decoder makes of
// it.
type Metrics struct {
	FramesReceived prometheus.Counter
	FramesDecoded  prometheus.Counter
	FramesSkipped  prometheus.Counter
	DecodeErrors   prometheus.Counter
	TLVsDecoded    *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		FramesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golldp_frames_received_total",
			Help: "Total number of frames handed to the decoder",
		}),
		FramesDecoded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golldp_frames_decoded_total",
			Help: "Total number of frames decoded successfully",
		}),
		FramesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golldp_frames_skipped_total",
			Help: "Total number of frames skipped because they were not LLDP",
		}),
		DecodeErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golldp_decode_errors_total",
			Help: "Total number of frames that failed to decode",
		}),
		TLVsDecoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "golldp_tlvs_decoded_total",
			Help: "Total number of TLVs decoded, by type",
		}, []string{"type"}),
	}
}
