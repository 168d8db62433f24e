// Package capture owns the live packet source feeding the decoder. The
// decoder itself never touches a socket; this package hands it raw frame
// buffers and keeps all pcap concerns (BPF filter, snap length, shutdown)
// on its side of the boundary.
package capture

import (
	"context"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
	"github.com/sirupsen/logrus"
)

// Filter matches LLDP traffic so the kernel drops everything else before
// it reaches us. The decoder still re-validates the envelope.
const Filter = "ether proto 0x88cc and ether dst 01:80:c2:00:00:0e"

// DefaultSnapLen comfortably covers an Ethernet header plus a maximum-size
// LLDPDU.
const DefaultSnapLen = 1600

// Options configure a live capture.
type Options struct {
	Interface   string
	SnapLen     int32
	Promiscuous bool
}

// HandlerFunc receives the raw bytes of one captured frame. The buffer is
// only valid for the duration of the call.
type HandlerFunc func(raw []byte)

// Source wraps a pcap handle and its receive loop.
type Source struct {
	handle *pcap.Handle
	log    *logrus.Entry
}

// Open starts a live capture on the configured interface with the LLDP
// filter installed.
func Open(opts Options) (*Source, error) {
	snaplen := opts.SnapLen
	if snaplen == 0 {
		snaplen = DefaultSnapLen
	}
	handle, err := pcap.OpenLive(opts.Interface, snaplen, opts.Promiscuous, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Interface, err)
	}
	if err := handle.SetBPFFilter(Filter); err != nil {
		handle.Close()
		return nil, fmt.Errorf("set BPF filter: %w", err)
	}
	return &Source{
		handle: handle,
		log:    logrus.WithField("iface", opts.Interface),
	}, nil
}

// Close releases the pcap handle.
func (s *Source) Close() {
	s.handle.Close()
}

// Run hands every captured frame to fn until ctx is cancelled or the
// packet source closes.
func (s *Source) Run(ctx context.Context, fn HandlerFunc) error {
	src := gopacket.NewPacketSource(s.handle, s.handle.LinkType())
	packets := src.Packets()
	s.log.WithField("filter", Filter).Info("capture started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info("capture stopped")
			return nil
		case pkt, ok := <-packets:
			if !ok {
				return nil
			}
			fn(pkt.Data())
		}
	}
}

// Interfaces lists capture-capable devices.
func Interfaces() ([]pcap.Interface, error) {
	return pcap.FindAllDevs()
}
