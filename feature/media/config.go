package media

// Config holds configuration for the image acquisition pipeline.
type Config struct {
	// Folder is the logical folder path recorded on media assets.
	Folder string `mapstructure:"folder" default:"/"`
	// PortraitSize is the square bound (pixels) author portraits are resized to.
	PortraitSize int `mapstructure:"portrait_size" default:"400"`
	// SystemActorID is the fixed actor recorded in media audit fields.
	SystemActorID uint `mapstructure:"system_actor_id" default:"1"`
	// TimeoutSeconds is the per-download timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// InsecureTLS accepts image hosts with non-standard or self-signed
	// certificates. Several catalog image CDNs are configured this way.
	InsecureTLS bool `mapstructure:"insecure_tls" default:"true"`
}
