package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/golldp/internal/capture"
	"gitlab.com/d21d3q/golldp/internal/config"
	"gitlab.com/d21d3q/golldp/internal/metrics"
	"gitlab.com/d21d3q/golldp/pkg/golldp"
)

var (
	rootCmd = &cobra.Command{
		Use:   "golldp-listen",
		Short: "Capture and decode LLDP frames from a network interface",
		Long: "golldp-listen captures LLDP frames on a network interface and logs " +
			"each decoded neighbor advertisement.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listIfaces {
				return runList()
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runListen(cmd.Context(), cfg)
		},
	}

	configPath string
	ifaceName  string
	listIfaces bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&ifaceName, "interface", "i", "", "interface to capture on (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&listIfaces, "list", false, "list capture-capable interfaces and exit")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if ifaceName != "" {
		cfg.Capture.Interface = ifaceName
	}
	if cfg.Capture.Interface == "" {
		return config.Config{}, fmt.Errorf("no capture interface: use --interface or set capture.interface in the config")
	}
	return cfg, nil
}

func runList() error {
	devs, err := capture.Interfaces()
	if err != nil {
		return err
	}
	for _, d := range devs {
		fmt.Println(d.Name)
	}
	return nil
}

func runListen(ctx context.Context, cfg config.Config) error {
	setupLogging(cfg.Logging)
	m := metrics.New()

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address)
	}

	src, err := capture.Open(capture.Options{
		Interface:   cfg.Capture.Interface,
		SnapLen:     cfg.Capture.SnapLen,
		Promiscuous: cfg.Capture.Promiscuous,
	})
	if err != nil {
		return err
	}
	defer src.Close()

	return src.Run(ctx, func(raw []byte) {
		m.FramesReceived.Inc()
		decoded, err := golldp.Decode(raw)
		if errors.Is(err, golldp.ErrNotLLDP) {
			m.FramesSkipped.Inc()
			return
		}
		if err != nil {
			m.DecodeErrors.Inc()
			logrus.WithError(err).Warn("failed to decode frame")
			return
		}
		m.FramesDecoded.Inc()
		logNeighbor(m, decoded)
	})
}

func logNeighbor(m *metrics.Metrics, decoded golldp.Frame) {
	entry := logrus.WithFields(logrus.Fields{
		"source": decoded.Envelope.Source.String(),
		"tlvs":   len(decoded.TLVs),
	})
	for _, v := range decoded.TLVs {
		m.TLVsDecoded.WithLabelValues(v.Code().String()).Inc()
		for key, value := range v.Fields() {
			switch key {
			case "system_name", "port_id", "chassis_id", "management_address":
				entry = entry.WithField(key, value)
			}
		}
	}
	entry.Info("neighbor advertisement")
	for _, v := range decoded.TLVs {
		logrus.WithFields(logrus.Fields(golldp.Summary(v))).Debug("tlv")
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logrus.WithField("addr", addr).Info("metrics endpoint listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Error("metrics endpoint failed")
	}
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
