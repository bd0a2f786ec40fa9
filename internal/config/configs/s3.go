package configs

// S3 holds configuration for the S3-compatible object store where
// campaign assets live. ProdNamespace and DevNamespace are key prefixes
// inside the shared bucket, one per deployment environment.
type S3 struct {
	// Endpoint is the object store host:port, without scheme.
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"SECRET_KEY" envDefault:"minioadmin"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`

	// Bucket is the single bucket all assets are stored in. CreateBucket
	// makes it on startup when missing; meant for local development.
	Bucket       string `env:"BUCKET" envDefault:"adboard"`
	CreateBucket bool   `env:"CREATE_BUCKET" envDefault:"false"`

	// ProdNamespace and DevNamespace prefix object keys so staging
	// traffic never serves or pollutes production assets.
	ProdNamespace string `env:"PROD_NAMESPACE" envDefault:"prod"`
	DevNamespace  string `env:"DEV_NAMESPACE" envDefault:"dev"`
}
