package storage

import (
	"context"
	"log"

	"gestion_flota/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates an S3 client from the shared AWS config.
//
// S3_ENDPOINT switches the client to a local store such as MinIO; path-style
// addressing is forced there because virtual hosts need DNS.
func ConnectS3() *s3.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}

	endpoint := getenvDefault("S3_ENDPOINT", "")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
