package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"hostel/config"
	"hostel/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params

	body, _ := io.ReadAll(params.Body)
	f.body = body

	return &s3.PutObjectOutput{}, f.err
}

func TestUploadFileBytes(t *testing.T) {
	tests := []struct {
		name         string
		publicDomain string
		putErr       error
		expectedURL  string
		expectedErr  bool
	}{
		{name: "public domain", publicDomain: "https://cdn.example.com/", expectedURL: "https://cdn.example.com/exports/2024/historico_2024-05.xlsx"},
		{name: "api endpoint fallback", expectedURL: "https://s3.example.com/archive/exports/2024/historico_2024-05.xlsx"},
		{name: "upload failure", putErr: errors.New("access denied"), expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.External.S3.BucketName = "archive"
			cfg.External.S3.APIEndpoint = "https://s3.example.com"
			cfg.External.S3.PublicDomain = tt.publicDomain

			putter := &fakePutter{err: tt.putErr}
			svc := &s3Impl{Client: putter, Config: cfg, otel: mocks.NewOtel()}

			url, err := svc.UploadFileBytes(context.Background(), "", "exports/2024", "historico_2024-05.xlsx", "application/octet-stream", []byte("xlsx"))

			if tt.expectedErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, url)
			assert.Equal(t, "archive", aws.ToString(putter.input.Bucket))
			assert.Equal(t, "exports/2024/historico_2024-05.xlsx", aws.ToString(putter.input.Key))
			assert.Equal(t, []byte("xlsx"), putter.body)
		})
	}
}
