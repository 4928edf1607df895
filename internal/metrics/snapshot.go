package metrics

// percentEpsilon is the smallest total treated as non-zero.
const percentEpsilon = 1e-9

// Snapshot is one tick's readings. Used/total pairs may be in any unit as
// long as both halves agree; throughput is in MB/s.
type Snapshot struct {
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
}

// Percent returns used/total*100, or 0 when total is zero or negative.
func Percent(used, total float64) float64 {
	if total <= percentEpsilon {
		return 0
	}
	return used / total * 100
}

// Value returns the normalized chart value of m for this snapshot.
func (s Snapshot) Value(m Metric) float64 {
	switch m {
	case CPUTemp:
		return s.CPUTemp
	case CPUUsage:
		return s.CPUUsage
	case RAM:
		return Percent(s.RAMUsed, s.RAMTotal)
	case Swap:
		return Percent(s.SwapUsed, s.SwapTotal)
	case Disk:
		return Percent(s.DiskUsed, s.DiskTotal)
	case NetRecv:
		return s.NetRecv
	case NetSent:
		return s.NetSent
	default:
		return 0
	}
}
