package configs

// S3 configures the object storage driver. Each collection is one object
// under Prefix. Endpoint and PathStyle allow S3-compatible services such as
// MinIO; credentials come from the default AWS chain.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"ENDPOINT"`
	Prefix    string `env:"PREFIX" envDefault:"admanager/"`
	PathStyle bool   `env:"PATH_STYLE" envDefault:"false"`
}
