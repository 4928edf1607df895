// Package sysmetrics reads host metrics through gopsutil and turns them into
// chart snapshots.
package sysmetrics

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/symo-dev/symo/internal/logger"
	"github.com/symo-dev/symo/internal/metrics"
)

const (
	bytesPerGiB = 1024 * 1024 * 1024
	bytesPerMiB = 1024 * 1024

	// minElapsed floors the time between network reads.
	minElapsed = 100 * time.Microsecond
)

// preferredSensors are checked in order for the CPU temperature.
var preferredSensors = []string{"coretemp", "k10temp", "cpu-thermal", "soc_thermal", "acpitz"}

// packageLabels mark the whole-package reading within a sensor.
var packageLabels = []string{"package", "tctl"}

// Reading is one acquisition pass. Memory and disk figures are in GiB,
// throughput in MB/s.
type Reading struct {
	Time      time.Time
	CPUTemp   float64
	CPUUsage  float64
	RAMUsed   float64
	RAMTotal  float64
	SwapUsed  float64
	SwapTotal float64
	DiskUsed  float64
	DiskTotal float64
	NetRecv   float64
	NetSent   float64
	// Cumulative interface counters in bytes.
	NetRecvBytes uint64
	NetSentBytes uint64
	Uptime       time.Duration
	// Warnings lists the sources that failed; their fields are zero.
	Warnings []string
}

// Snapshot converts the reading into a chart snapshot.
func (r Reading) Snapshot() metrics.Snapshot {
	return metrics.Snapshot{
		CPUTemp:   r.CPUTemp,
		CPUUsage:  r.CPUUsage,
		RAMUsed:   r.RAMUsed,
		RAMTotal:  r.RAMTotal,
		SwapUsed:  r.SwapUsed,
		SwapTotal: r.SwapTotal,
		DiskUsed:  r.DiskUsed,
		DiskTotal: r.DiskTotal,
		NetRecv:   r.NetRecv,
		NetSent:   r.NetSent,
	}
}

// Reader acquires readings. It keeps the previous network counters to turn
// them into rates, so one Reader should be used per sampling loop. It is not
// safe for concurrent use.
type Reader struct {
	diskPath string
	now      func() time.Time

	prevRecv uint64
	prevSent uint64
	prevTime time.Time
	primed   bool

	// Overridable sources for testing.
	temperatures func(ctx context.Context) ([]sensors.TemperatureStat, error)
	cpuPercent   func(ctx context.Context) (float64, error)
	memory       func(ctx context.Context) (used, total uint64, err error)
	swap         func(ctx context.Context) (used, total uint64, err error)
	diskUsage    func(ctx context.Context, path string) (used, total uint64, err error)
	netCounters  func(ctx context.Context) (recv, sent uint64, err error)
	bootTime     func(ctx context.Context) (uint64, error)
}

// Option configures a Reader.
type Option func(*Reader)

// WithDiskPath sets the filesystem whose usage is reported.
func WithDiskPath(path string) Option {
	return func(r *Reader) {
		if path != "" {
			r.diskPath = path
		}
	}
}

// WithClock sets the time source used for network rates and uptime.
func WithClock(now func() time.Time) Option {
	return func(r *Reader) {
		r.now = now
	}
}

// NewReader creates a Reader backed by gopsutil.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		diskPath:     "/",
		now:          time.Now,
		temperatures: sensors.TemperaturesWithContext,
		cpuPercent: func(ctx context.Context) (float64, error) {
			pcts, err := cpu.PercentWithContext(ctx, 0, false)
			if err != nil {
				return 0, err
			}
			if len(pcts) == 0 {
				return 0, fmt.Errorf("no cpu percentages reported")
			}
			return pcts[0], nil
		},
		memory: func(ctx context.Context) (uint64, uint64, error) {
			vm, err := mem.VirtualMemoryWithContext(ctx)
			if err != nil {
				return 0, 0, err
			}
			return vm.Used, vm.Total, nil
		},
		swap: func(ctx context.Context) (uint64, uint64, error) {
			sm, err := mem.SwapMemoryWithContext(ctx)
			if err != nil {
				return 0, 0, err
			}
			return sm.Used, sm.Total, nil
		},
		diskUsage: func(ctx context.Context, path string) (uint64, uint64, error) {
			du, err := disk.UsageWithContext(ctx, path)
			if err != nil {
				return 0, 0, err
			}
			return du.Used, du.Total, nil
		},
		netCounters: func(ctx context.Context) (uint64, uint64, error) {
			counters, err := net.IOCountersWithContext(ctx, false)
			if err != nil {
				return 0, 0, err
			}
			if len(counters) == 0 {
				return 0, 0, fmt.Errorf("no network counters reported")
			}
			return counters[0].BytesRecv, counters[0].BytesSent, nil
		},
		bootTime: host.BootTimeWithContext,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Read performs one acquisition pass. Failing sources are reported in
// Reading.Warnings and leave their fields at zero; the only error is a
// cancelled context.
func (r *Reader) Read(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	reading := Reading{Time: r.now()}
	warn := func(source string, err error) {
		reading.Warnings = append(reading.Warnings, fmt.Sprintf("%s: %v", source, err))
	}

	if temps, err := r.temperatures(ctx); err != nil && len(temps) == 0 {
		warn("temperature", err)
	} else {
		reading.CPUTemp = CPUTemperature(temps)
	}

	if pct, err := r.cpuPercent(ctx); err != nil {
		warn("cpu", err)
	} else {
		reading.CPUUsage = pct
	}

	if used, total, err := r.memory(ctx); err != nil {
		warn("memory", err)
	} else {
		reading.RAMUsed, reading.RAMTotal = gib(used), gib(total)
	}

	if used, total, err := r.swap(ctx); err != nil {
		warn("swap", err)
	} else {
		reading.SwapUsed, reading.SwapTotal = gib(used), gib(total)
	}

	if used, total, err := r.diskUsage(ctx, r.diskPath); err != nil {
		warn("disk", err)
	} else {
		reading.DiskUsed, reading.DiskTotal = gib(used), gib(total)
	}

	if recv, sent, err := r.netCounters(ctx); err != nil {
		warn("network", err)
	} else {
		reading.NetRecvBytes, reading.NetSentBytes = recv, sent
		reading.NetRecv, reading.NetSent = r.rates(recv, sent, reading.Time)
	}

	if boot, err := r.bootTime(ctx); err != nil {
		warn("uptime", err)
	} else {
		reading.Uptime = Uptime(boot, reading.Time)
	}

	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	if len(reading.Warnings) > 0 {
		logger.Debug("metric sources degraded", "warnings", reading.Warnings)
	}

	return reading, nil
}

// rates converts cumulative byte counters into MB/s since the previous read.
// The first read only primes the counters. Counter resets yield 0, not a
// negative rate.
func (r *Reader) rates(recv, sent uint64, now time.Time) (recvRate, sentRate float64) {
	defer func() {
		r.prevRecv, r.prevSent, r.prevTime, r.primed = recv, sent, now, true
	}()

	if !r.primed {
		return 0, 0
	}

	elapsed := max(now.Sub(r.prevTime), minElapsed).Seconds()
	return delta(recv, r.prevRecv) / elapsed / bytesPerMiB,
		delta(sent, r.prevSent) / elapsed / bytesPerMiB
}

func delta(cur, prev uint64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur - prev)
}

func gib(bytes uint64) float64 {
	return float64(bytes) / bytesPerGiB
}

// CPUTemperature picks the CPU temperature from sensor readings. The first
// preferred sensor present wins, using its package reading when there is
// one; otherwise the first reading of any sensor is used. Values are
// truncated to whole degrees. It returns 0 when nothing is available.
func CPUTemperature(temps []sensors.TemperatureStat) float64 {
	if len(temps) == 0 {
		return 0
	}

	for _, name := range preferredSensors {
		var first *sensors.TemperatureStat
		for i := range temps {
			label, ok := sensorLabel(temps[i].SensorKey, name)
			if !ok {
				continue
			}
			for _, prefix := range packageLabels {
				if strings.HasPrefix(label, prefix) {
					return math.Trunc(temps[i].Temperature)
				}
			}
			if first == nil {
				first = &temps[i]
			}
		}
		if first != nil {
			return math.Trunc(first.Temperature)
		}
	}

	return math.Trunc(temps[0].Temperature)
}

// sensorLabel splits a gopsutil sensor key such as "coretemp_package_id_0"
// into its label when the key belongs to the named sensor.
func sensorLabel(key, name string) (string, bool) {
	key = strings.ToLower(key)
	if key == name {
		return "", true
	}
	if label, ok := strings.CutPrefix(key, name+"_"); ok {
		return label, true
	}
	return "", false
}

// Uptime returns the time elapsed since boot, a Unix timestamp in seconds,
// truncated to whole seconds.
func Uptime(boot uint64, now time.Time) time.Duration {
	up := now.Sub(time.Unix(int64(boot), 0))
	if up < 0 {
		return 0
	}
	return up.Truncate(time.Second)
}

// FormatUptime formats d as H:MM:SS, prefixed with the day count when
// longer than a day, for example "2 days, 3:04:05".
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	h := (total % 86400) / 3600
	m := (total % 3600) / 60
	s := total % 60

	clock := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	switch {
	case days == 1:
		return "1 day, " + clock
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	default:
		return clock
	}
}
