package types

// Checkpoint identifies a trained generator checkpoint on disk.
type Checkpoint struct {
	// Number of latent (Z) channels the checkpoint was trained with.
	// example: 100
	ZChannels int `json:"z_channels" example:"100"`
	// Checkpoint directory name.
	// example: 100_Z_channels_200th_epoch
	Name string `json:"name" example:"100_Z_channels_200th_epoch"`
	// Absolute path to the checkpoint on disk.
	// example: /srv/agingd/trained_models/100_Z_channels_200th_epoch
	Path string `json:"path" example:"/srv/agingd/trained_models/100_Z_channels_200th_epoch"`
	// Whether the path exists on disk.
	// example: true
	Present bool `json:"present" example:"true"`
}
