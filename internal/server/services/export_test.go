package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/securevault/internal/server/config"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubS3 swaps the AWS seams for the duration of the test.
type stubS3 struct {
	loadErr    error
	putErr     error
	presignErr error

	region       string
	baseEndpoint string
	bucket       string
	key          string
	body         []byte
	expires      time.Duration
}

func (s *stubS3) install(t *testing.T) {
	t.Helper()
	origLoad, origNew, origPre, origPut, origGet := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, putObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, putObject, presignGetObject = origLoad, origNew, origPre, origPut, origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		s.region = lo.Region
		return aws.Config{}, s.loadErr
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		s.baseEndpoint = aws.ToString(opts.BaseEndpoint)
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if s.putErr != nil {
			return nil, s.putErr
		}
		s.bucket = aws.ToString(in.Bucket)
		s.key = aws.ToString(in.Key)
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		s.body = b
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if s.presignErr != nil {
			return nil, s.presignErr
		}
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		s.expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + aws.ToString(in.Key) + "?sig=1"}, nil
	}
}

func newExportService(t *testing.T, keys *fakeKeys) *ExportService {
	db, _ := newSQLMockDB(t)
	cfg := &sc.Config{
		S3Region:                   "us-east-1",
		S3RootUser:                 "minioadmin",
		S3RootPassword:             "minioadmin",
		S3BaseEndpoint:             "http://127.0.0.1:9000",
		S3Bucket:                   "vault",
		ExportLinkValidityDuration: 5 * time.Minute,
	}
	return NewExportService(db, &fakeRepoManager{k: keys}, cfg)
}

func TestExport_UploadsSnapshotAndSignsLink(t *testing.T) {
	stub := &stubS3{}
	stub.install(t)

	keys := &fakeKeys{listOut: []*models.SecurityKey{
		{ID: "k1", Name: "GitHub Token", Type: "api_key", Value: "ghp_xxx", Tags: []string{"work"}},
		{ID: "k2", Name: "Mail", Type: "password", Value: "hunter2"},
	}}
	svc := newExportService(t, keys)

	exp, err := svc.Export(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.KeyQuery{UserID: "u1", OrderBy: "created_at"}, keys.lastQuery)
	assert.Equal(t, "us-east-1", stub.region)
	assert.Equal(t, "http://127.0.0.1:9000", stub.baseEndpoint)
	assert.Equal(t, "vault", stub.bucket)
	assert.True(t, strings.HasPrefix(stub.key, "exports/u1/"), stub.key)
	assert.Equal(t, stub.key, exp.ObjectKey)
	assert.Equal(t, 2, exp.Count)
	assert.Equal(t, 5*time.Minute, stub.expires)
	assert.Contains(t, exp.URL, stub.key)

	var doc exportDocument
	require.NoError(t, json.Unmarshal(stub.body, &doc))
	assert.Equal(t, "u1", doc.UserID)
	require.Len(t, doc.Keys, 2)
	assert.Equal(t, "ghp_xxx", doc.Keys[0].Value)
	assert.Equal(t, []string{"work"}, doc.Keys[0].Tags)
}

func TestExport_Failures(t *testing.T) {
	tests := []struct {
		name string
		stub *stubS3
		keys *fakeKeys
		msg  string
	}{
		{"list", &stubS3{}, &fakeKeys{listErr: errors.New("db down")}, "error listing keys"},
		{"config", &stubS3{loadErr: errors.New("load-fail")}, &fakeKeys{}, "error configuring storage: load-fail"},
		{"put", &stubS3{putErr: errors.New("put-fail")}, &fakeKeys{}, "error uploading export: put-fail"},
		{"presign", &stubS3{presignErr: errors.New("sign-fail")}, &fakeKeys{}, "error signing export link: sign-fail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.stub.install(t)
			svc := newExportService(t, tt.keys)

			_, err := svc.Export(context.Background(), "u1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestExportObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	k1 := ExportObjectKey("u1", now)
	k2 := ExportObjectKey("u1", now)

	assert.True(t, strings.HasPrefix(k1, "exports/u1/2025/03/07/"), k1)
	assert.True(t, strings.HasSuffix(k1, ".json"))
	assert.NotEqual(t, k1, k2)
}
