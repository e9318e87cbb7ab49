package registry

import (
	"fmt"
	"path/filepath"
	"sort"

	"agingd/internal/common/fsutil"
	"agingd/pkg/types"
)

// Checkpoints maps a latent channel count to the directory name of the
// generator trained with it. Only these checkpoints can be served.
var Checkpoints = map[int]string{
	100: "100_Z_channels_200th_epoch",
}

// UnknownZChannelsError reports a channel count with no entry in Checkpoints.
type UnknownZChannelsError struct{ ZChannels int }

func (e UnknownZChannelsError) Error() string {
	return fmt.Sprintf("no checkpoint trained with %d Z channels", e.ZChannels)
}

// Resolve returns the checkpoint for zChannels under modelsDir.
// The checkpoint must exist on disk.
func Resolve(modelsDir string, zChannels int) (types.Checkpoint, error) {
	name, ok := Checkpoints[zChannels]
	if !ok {
		return types.Checkpoint{}, UnknownZChannelsError{ZChannels: zChannels}
	}
	cp, err := entry(modelsDir, zChannels, name)
	if err != nil {
		return cp, err
	}
	if !cp.Present {
		return cp, fmt.Errorf("checkpoint %s not found", cp.Path)
	}
	return cp, nil
}

// List returns every known checkpoint, sorted by channel count, flagged with
// whether it is present under modelsDir.
func List(modelsDir string) ([]types.Checkpoint, error) {
	zs := make([]int, 0, len(Checkpoints))
	for z := range Checkpoints {
		zs = append(zs, z)
	}
	sort.Ints(zs)
	out := make([]types.Checkpoint, 0, len(zs))
	for _, z := range zs {
		cp, err := entry(modelsDir, z, Checkpoints[z])
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func entry(modelsDir string, z int, name string) (types.Checkpoint, error) {
	base, err := fsutil.ExpandHome(modelsDir)
	if err != nil {
		return types.Checkpoint{}, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return types.Checkpoint{}, fmt.Errorf("abs path: %w", err)
	}
	p := filepath.Join(abs, name)
	return types.Checkpoint{ZChannels: z, Name: name, Path: p, Present: fsutil.PathExists(p)}, nil
}
