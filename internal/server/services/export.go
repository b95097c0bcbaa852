package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/securevault/internal/server/config"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Seams over the AWS SDK so tests can run without object storage.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Export describes a vault snapshot written to object storage.
type Export struct {
	ObjectKey string
	URL       string
	Count     int
	ExpiresAt time.Time
}

// exportDocument is the JSON layout of an exported vault.
type exportDocument struct {
	ExportedAt time.Time           `json:"exported_at"`
	UserID     string              `json:"user_id"`
	Keys       []exportedKeyRecord `json:"keys"`
}

type exportedKeyRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	Value       string     `json:"value"`
	URL         string     `json:"url,omitempty"`
	Username    string     `json:"username,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ExportService writes JSON snapshots of a user's vault to S3-compatible
// storage and hands out presigned download links.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: cfg}
}

// ExportObjectKey returns a fresh object key for a snapshot of userID's vault.
func ExportObjectKey(userID string, now time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%02d/%02d/%v.json", userID, now.Year(), now.Month(), now.Day(), uuid.New())
}

func (s *ExportService) getClients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// Export snapshots every key of userID, oldest first.
func (s *ExportService) Export(ctx context.Context, userID string) (*Export, error) {
	keys, err := s.repomanager.SecurityKeys(s.db).List(ctx, models.KeyQuery{UserID: userID, OrderBy: "created_at"})
	if err != nil {
		return nil, fmt.Errorf("error listing keys: %w", err)
	}

	now := time.Now().UTC()
	doc := exportDocument{ExportedAt: now, UserID: userID, Keys: make([]exportedKeyRecord, 0, len(keys))}
	for _, k := range keys {
		doc.Keys = append(doc.Keys, exportedKeyRecord{
			ID: k.ID, Name: k.Name, Type: k.Type, Description: k.Description, Value: k.Value,
			URL: k.URL, Username: k.Username, Tags: k.Tags, ExpiresAt: k.ExpiresAt,
			CreatedAt: k.CreatedAt, UpdatedAt: k.UpdatedAt,
		})
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}

	client, presignClient, err := s.getClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring storage: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ExportObjectKey(userID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	validity := s.config.ExportLinkValidityDuration
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(validity))
	if err != nil {
		return nil, fmt.Errorf("error signing export link: %w", err)
	}

	return &Export{ObjectKey: key, URL: req.URL, Count: len(keys), ExpiresAt: now.Add(validity)}, nil
}
