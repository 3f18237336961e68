package s3impl

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/orgball2608/story-engine/internal/media"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPut(t *testing.T) {
	fake := &fakeS3{}
	impl := newImpl(fake, "media", "https://cdn.example.com/", logger.NewNop())

	ref, err := impl.Put(context.Background(), "stories/a.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/stories/a.png", ref)
	assert.Equal(t, "media", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "stories/a.png", aws.ToString(fake.input.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.input.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(fake.input.ContentLength))
	assert.Equal(t, []byte("png"), fake.body)
}

func TestPutFailure(t *testing.T) {
	impl := newImpl(&fakeS3{err: errors.New("denied")}, "media", "https://cdn", logger.NewNop())

	ref, err := impl.Put(context.Background(), "k", "image/png", nil)
	assert.Empty(t, ref)
	assert.ErrorIs(t, err, media.ErrUpload)
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn", publicBaseURL("https://cdn", "http://minio:9000", "b", "r"))
	assert.Equal(t, "http://minio:9000/b", publicBaseURL("", "http://minio:9000/", "b", "r"))
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com", publicBaseURL("", "", "b", "eu-west-1"))
}
