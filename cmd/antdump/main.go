package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/antlink/internal/logging"
	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/protocol/message"
	"github.com/danmuck/antlink/internal/transport"
)

// resetSettle is how long the radio needs after a system reset before it
// accepts commands.
const resetSettle = 500 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "path to antdump TOML config")
	port := flag.String("port", "", "serial port of the radio")
	baud := flag.Int("baud", transport.DefaultBaudRate, "serial baud rate")
	input := flag.String("input", "", "hex capture file to decode instead of a port")
	probe := flag.Bool("probe", false, "reset the radio and request its identity before dumping")
	logLevel := flag.String("log-level", "", "trace|debug|info|warn|error|off")
	listPorts := flag.Bool("list", false, "list serial ports and exit")
	flag.Parse()

	logging.ConfigureRuntime()

	if *listPorts {
		ports, err := transport.Ports()
		if err != nil {
			fatalf("list ports: %v", err)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	cfg := defaultDumpConfig()
	if *configPath != "" {
		loaded, err := loadDumpConfig(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "baud":
			cfg.Baud = *baud
		case "input":
			cfg.Input = *input
		case "probe":
			cfg.Probe = *probe
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.LogLevel != "" && !logging.SetLevel(cfg.LogLevel) {
		fatalf("unknown log level %q", cfg.LogLevel)
	}
	if err := cfg.validate(); err != nil {
		fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg dumpConfig, out io.Writer) error {
	var src io.Reader
	if cfg.Input != "" {
		text, err := os.ReadFile(cfg.Input)
		if err != nil {
			return fmt.Errorf("read capture: %w", err)
		}
		raw, err := parseCapture(string(text))
		if err != nil {
			return err
		}
		src = bytes.NewReader(raw)
	} else {
		sp := transport.NewSerialPort(cfg.Port, cfg.Baud, cfg.ReadTimeout)
		if err := sp.Open(ctx); err != nil {
			return err
		}
		defer sp.Close()
		log.Info().Str("port", cfg.Port).Int("baud", cfg.Baud).Msg("antdump connected")
		if cfg.Probe {
			if err := probeRadio(ctx, sp); err != nil {
				return err
			}
		}
		src = sp
	}

	r := transport.NewReader(src)
	defer func() {
		st := r.Stats()
		log.Info().
			Int("messages", st.Messages).
			Int("corrupted", st.Corrupted).
			Int("malformed", st.Malformed).
			Int("unknown", st.Unknown).
			Int("dropped", st.Dropped).
			Msg("antdump done")
	}()
	for {
		v, err := r.Next(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, describe(v))
	}
}

// probeRadio resets the radio and asks for the messages that identify it.
func probeRadio(ctx context.Context, w io.Writer) error {
	if err := transport.WriteMessage(ctx, w, message.NewSystemReset()); err != nil {
		return fmt.Errorf("probe reset: %w", err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(resetSettle):
	}
	for _, id := range []ant.MessageID{ant.MsgCapabilities, ant.MsgVersion, ant.MsgSerialNumber} {
		req, err := message.NewChannelRequest(0, id)
		if err != nil {
			return err
		}
		if err := transport.WriteMessage(ctx, w, req); err != nil {
			return fmt.Errorf("probe request %s: %w", id, err)
		}
	}
	return nil
}

func describe(v message.Variant) string {
	switch m := v.(type) {
	case *message.ChannelEvent:
		if m.IsResponse() {
			return fmt.Sprintf("channel-event ch=%d response-to=%s code=%s", m.Channel(), m.RespondsTo(), m.Code())
		}
		return fmt.Sprintf("channel-event ch=%d event=%s", m.Channel(), m.Code())
	case *message.ChannelStatus:
		return fmt.Sprintf("channel-status ch=%d state=%d", m.Channel(), m.State())
	case *message.Version:
		return fmt.Sprintf("version %q", m.String())
	case *message.SerialNumber:
		return fmt.Sprintf("serial-number %d", m.Uint32())
	case *message.Capabilities:
		return fmt.Sprintf("capabilities channels=%d networks=%d std=0x%02x adv=0x%02x adv2=0x%02x",
			m.MaxChannels(), m.MaxNetworks(), m.StdOptions(), m.AdvOptions(), m.AdvOptions2())
	case *message.Startup:
		return fmt.Sprintf("startup reason=0x%02x", m.Reason())
	case *message.ChannelID:
		return fmt.Sprintf("channel-id ch=%d device=%d type=%d trans=%d",
			m.Channel(), m.DeviceNumber(), m.DeviceType(), m.TransmissionType())
	case fmt.Stringer:
		return m.String()
	default:
		return v.Type().String()
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "antdump: "+format+"\n", args...)
	os.Exit(1)
}
