package dao

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// R2DAO uploads the export as a single CSV object to an R2 (S3-compatible)
// bucket. Each save replaces the object completely.
type R2DAO struct {
	s3         S3Uploader
	bucketName string
	objectKey  string
}

func NewR2DAO(bucketName, objectKey string) *R2DAO {
	s3Client, err := initS3Client()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize R2 client")
	}
	return &R2DAO{
		s3:         s3Client,
		bucketName: bucketName,
		objectKey:  objectKey,
	}
}

func NewR2DAOWithClient(bucketName, objectKey string, s3Client S3Uploader) *R2DAO {
	return &R2DAO{
		s3:         s3Client,
		bucketName: bucketName,
		objectKey:  objectKey,
	}
}

func (d *R2DAO) SaveTournaments(tournaments []models.Tournament) error {
	logrus.Infof("Saving %d tournaments to bucket: %s with key: %s",
		len(tournaments), d.bucketName, d.objectKey)

	csvBytes, err := gocsv.MarshalBytes(tournaments)
	if err != nil {
		return fmt.Errorf("failed to marshal csv: %w", err)
	}

	_, err = d.s3.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: &d.bucketName,
		Key:    &d.objectKey,
		Body:   bytes.NewReader(csvBytes),
	})
	return err
}

func initS3Client() (*s3.Client, error) {
	// Load .env only for local dev
	_ = godotenv.Load()

	endpoint := os.Getenv("R2_ENDPOINT")
	accessKeyId := os.Getenv("R2_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("R2_SECRET_ACCESS_KEY")

	var missing error
	if endpoint == "" {
		missing = multierr.Append(missing, errors.New("R2_ENDPOINT is not set"))
	}
	if accessKeyId == "" {
		missing = multierr.Append(missing, errors.New("R2_ACCESS_KEY_ID is not set"))
	}
	if accessKeySecret == "" {
		missing = multierr.Append(missing, errors.New("R2_SECRET_ACCESS_KEY is not set"))
	}
	if missing != nil {
		return nil, missing
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyId, accessKeySecret, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	}), nil
}
