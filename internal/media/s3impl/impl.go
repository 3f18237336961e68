package s3impl

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/orgball2608/story-engine/internal/media"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"go.uber.org/fx"
)

// putObjectAPI is the slice of the s3 client the storage needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Impl struct {
	client  putObjectAPI
	bucket  string
	baseURL string
	logger  logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

var _ media.Storage = (*Impl)(nil)

func New(opts Opts) (*Impl, error) {
	cfg := opts.Config.S3

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newImpl(client, cfg.Bucket, publicBaseURL(cfg.PublicBaseURL, cfg.Endpoint, cfg.Bucket, cfg.Region), opts.Logger), nil
}

func newImpl(client putObjectAPI, bucket, baseURL string, log logger.Logger) *Impl {
	return &Impl{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log.WithComponent("MediaStorage"),
	}
}

func (i *Impl) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := i.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(i.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		i.logger.Error("Failed to put object", "key", key, "error", err)
		return "", fmt.Errorf("%w: %w", media.ErrUpload, err)
	}

	i.logger.Debug("Media stored", "key", key, "bytes", len(data))
	return i.baseURL + "/" + key, nil
}

func publicBaseURL(configured, endpoint, bucket, region string) string {
	switch {
	case configured != "":
		return configured
	case endpoint != "":
		return strings.TrimRight(endpoint, "/") + "/" + bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
}
