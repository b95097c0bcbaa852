package cli

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/dmitrijs2005/securevault/internal/client/services"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/filex"
	"github.com/dmitrijs2005/securevault/internal/netx"
)

const (
	defaultExportDir = "exports"
	maxExportSize    = 64 << 20
)

func (a *App) credentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

func (a *App) Register(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteRegister)
		email, password, err := a.credentials()
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		_, err = a.auth.Register(ctx, email, password)
		return err
	})
}

func (a *App) Login(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteLogin)
		email, password, err := a.credentials()
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		_, err = a.auth.Login(ctx, email, password)
		return err
	})
}

func (a *App) Logout(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		return a.auth.Logout(ctx)
	})
}

func (a *App) ChangePassword(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteSettings)
		pw, err := getPassword("New password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pw)

		confirm, err := getPassword("Confirm new password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)

		return a.auth.ChangePassword(ctx, pw, confirm)
	})
}

func (a *App) Profile(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteSettings)
		p, err := a.settings.LoadProfile(ctx)
		if err != nil {
			return err
		}
		renderProfile(a.out, p)
		return nil
	})
}

func (a *App) Rename(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteSettings)
		name, err := getSimpleText(a.reader, "Full name", a.out)
		if err != nil {
			return err
		}
		_, err = a.settings.SaveProfile(ctx, name)
		return err
	})
}

// Export asks the server for a snapshot and downloads it into dir, or into
// ./exports when dir is empty.
func (a *App) Export(ctx context.Context, dir string) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteSettings)
		e, err := a.settings.Export(ctx)
		if err != nil {
			return err
		}

		var target string
		if dir == "" {
			target, err = filex.EnsureSubdDir(defaultExportDir)
		} else {
			target, err = filex.EnsureDir(dir)
		}
		if err != nil {
			a.logger.Error(ctx, "export dir failed", "dir", dir, "error", err)
			a.notifier.Error("Error", fmt.Sprintf("Failed to create directory %q", dir))
			return err
		}

		var data []byte
		err = a.spinner.run("Downloading export...", func() error {
			var derr error
			data, derr = netx.DownloadPresignedURL(ctx, a.http, e.URL, maxExportSize)
			return derr
		})
		if err != nil {
			a.logger.Error(ctx, "export download failed", "error", err)
			a.notifier.Error("Error", "Failed to download export")
			return err
		}

		file := filepath.Join(target, path.Base(e.ObjectKey))
		if err := filex.WriteFileAtomic(file, data, 0o600); err != nil {
			a.logger.Error(ctx, "export write failed", "error", err)
			a.notifier.Error("Error", "Failed to save export")
			return err
		}
		a.notifier.Success("Export saved", file)
		return nil
	})
}
