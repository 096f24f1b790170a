package configs

// BigQuery holds the warehouse settings checked by the connection test.
type BigQuery struct {
	ProjectID string `env:"PROJECT_ID"`
	DatasetID string `env:"DATASET_ID"`
	Region    string `env:"REGION"`
}
