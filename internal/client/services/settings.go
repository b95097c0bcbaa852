package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/logging"
)

// SettingsFlows serves the settings view: profile and vault export.
type SettingsFlows struct {
	profiles client.Profiles
	notifier Notifier
	logger   logging.Logger
}

func NewSettingsFlows(p client.Profiles, n Notifier, logger logging.Logger) *SettingsFlows {
	return &SettingsFlows{profiles: p, notifier: n, logger: logger.With("module", "settings")}
}

func (s *SettingsFlows) LoadProfile(ctx context.Context) (*models.Profile, error) {
	p, err := s.profiles.GetProfile(ctx)
	if err != nil {
		s.logger.Error(ctx, "load profile failed", "error", err)
		s.notifier.Error(errorTitle, Message(err, "Failed to fetch profile"))
		return nil, err
	}
	return p, nil
}

func (s *SettingsFlows) SaveProfile(ctx context.Context, fullName string) (*models.Profile, error) {
	p, err := s.profiles.UpdateProfile(ctx, strings.TrimSpace(fullName))
	if err != nil {
		s.logger.Error(ctx, "save profile failed", "error", err)
		s.notifier.Error(errorTitle, Message(err, "Failed to update profile"))
		return nil, err
	}
	s.notifier.Success("Profile updated", "Your profile has been updated successfully.")
	return p, nil
}

// Export asks the server for a vault snapshot and returns its download link.
func (s *SettingsFlows) Export(ctx context.Context) (*models.Export, error) {
	e, err := s.profiles.ExportVault(ctx)
	if err != nil {
		s.logger.Error(ctx, "export failed", "error", err)
		s.notifier.Error(errorTitle, Message(err, "Failed to export keys"))
		return nil, err
	}
	s.notifier.Success("Export ready", fmt.Sprintf("%d keys exported. The link expires at %s.", e.Count, e.ExpiresAt.Local().Format("15:04")))
	return e, nil
}
