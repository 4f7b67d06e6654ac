package analyses

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/truthlens/truthlens/internal/analysis"
	sc "github.com/truthlens/truthlens/internal/server/config"
)

// Service handles image analysis. Clients upload the image straight to object
// storage through a presigned PUT URL, then ask the service to analyze the
// uploaded object by key.
type Service struct {
	repo   Repository
	config *sc.Config

	// fetch retrieves an uploaded object by storage key. Defaults to S3;
	// replaced in tests.
	fetch func(ctx context.Context, key string) ([]byte, error)
}

func NewService(repo Repository, config *sc.Config) *Service {
	s := &Service{
		repo:   repo,
		config: config,
	}
	s.fetch = s.fetchObject
	return s
}

// NewServiceWithFetcher constructs a Service with a custom object fetcher in
// place of S3.
func NewServiceWithFetcher(repo Repository, config *sc.Config, fetch func(ctx context.Context, key string) ([]byte, error)) *Service {
	s := NewService(repo, config)
	s.fetch = fetch
	return s
}

// GetRandomStorageKey builds a date-partitioned object key for an upload.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) awsConfig(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
}

func (s *Service) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := s.awsConfig(ctx)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})
	return client, nil
}

// GetPresignedPutUrl returns a fresh storage key and a presigned URL the
// client can PUT the image to.
func (s *Service) GetPresignedPutUrl(ctx context.Context) (string, string, error) {

	client, err := s.getS3Client(ctx)
	if err != nil {
		return "", "", err
	}
	presignClient := s3.NewPresignClient(client)

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.PresignValidityDuration))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

func (s *Service) fetchObject(ctx context.Context, key string) ([]byte, error) {

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching object %s: %w", key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// Analyze evaluates the uploaded object at key and stores the verdict for
// userID.
func (s *Service) Analyze(ctx context.Context, userID, key, filename string) (*Analysis, error) {

	image, err := s.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	verdict, confidence, digest := analysis.Evaluate(image)

	result := &Analysis{
		ID:         uuid.NewString(),
		UserID:     userID,
		StorageKey: key,
		Filename:   filename,
		Verdict:    verdict,
		Confidence: confidence,
		SHA256:     digest,
	}

	result, err = s.repo.Create(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("error creating analysis: %v", err)
	}

	return result, nil
}
