package probe

import "github.com/shirou/gopsutil/v3/disk"

// VolumeInfo summarizes the volume that would hold a candidate data
// directory. It complements Probe's available-bytes figure with filesystem
// metadata for display purposes.
type VolumeInfo struct {
	Mountpoint  string
	Fstype      string
	TotalBytes  uint64
	UsedPercent float64
}

// Volume reports filesystem metadata for the volume backing path. Like
// Probe, it anchors the query at the nearest existing ancestor so that
// paths which do not exist yet can still be described.
func Volume(path string) (*VolumeInfo, error) {
	anchor := nearestExistingAncestor(path)
	usage, err := disk.Usage(anchor)
	if err != nil {
		return nil, err
	}
	return &VolumeInfo{
		Mountpoint:  usage.Path,
		Fstype:      usage.Fstype,
		TotalBytes:  usage.Total,
		UsedPercent: usage.UsedPercent,
	}, nil
}
