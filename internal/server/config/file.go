package config

import (
	"github.com/dmitrijs2005/securevault/internal/flagx"
	"github.com/dmitrijs2005/securevault/internal/timex"
)

// FileConfig is the DTO used for reading JSON or YAML configuration files.
// Interval fields use timex.Duration, so both "15m" and integer nanoseconds
// are accepted. Empty fields leave the current Config value untouched.
type FileConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                    string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration" yaml:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                     string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	ExportLinkValidityDuration   timex.Duration `json:"export_link_validity_duration" yaml:"export_link_validity_duration"`
	LogLevel                     string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays config with values from the file named by -c/-config.
// It panics if the file cannot be read or decoded; with no flag it is a no-op.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeConfigFile(path, &fc); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, fc.DatabaseDSN)
	setString(&config.SecretKey, fc.SecretKey)
	setString(&config.S3RootUser, fc.S3RootUser)
	setString(&config.S3RootPassword, fc.S3RootPassword)
	setString(&config.S3Bucket, fc.S3Bucket)
	setString(&config.S3Region, fc.S3Region)
	setString(&config.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&config.LogLevel, fc.LogLevel)

	if fc.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if fc.RefreshTokenValidityDuration.Duration > 0 {
		config.RefreshTokenValidityDuration = fc.RefreshTokenValidityDuration.Duration
	}
	if fc.ExportLinkValidityDuration.Duration > 0 {
		config.ExportLinkValidityDuration = fc.ExportLinkValidityDuration.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
