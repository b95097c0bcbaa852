package services

import (
	"context"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/client/store"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/logging"
)

const listResource = common.SecurityKeysTable

func keyResource(id string) string {
	return common.SecurityKeysTable + "/" + id
}

// KeyFlows implements the list, create, read, update and delete journeys
// over security keys. Every flow issues at most one remote call. Results are
// applied only while ctx is alive and only if no newer request for the same
// resource has been applied already. A successful delete always applies and
// voids reads of that key still in flight.
type KeyFlows struct {
	records   client.Records
	store     *store.Store
	notifier  Notifier
	navigator Navigator
	confirmer Confirmer
	logger    logging.Logger
}

func NewKeyFlows(records client.Records, st *store.Store, n Notifier, nav Navigator, c Confirmer, logger logging.Logger) *KeyFlows {
	return &KeyFlows{
		records:   records,
		store:     st,
		notifier:  n,
		navigator: nav,
		confirmer: c,
		logger:    logger.With("module", "keys"),
	}
}

// List fetches the user's keys, newest first, into the store.
func (f *KeyFlows) List(ctx context.Context) error {
	t := f.store.Begin(listResource)
	f.store.SetLoading(true)
	defer f.store.SetLoading(false)

	keys, err := f.records.List(ctx, client.ListQuery{OrderBy: "created_at", Desc: true})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		f.logger.Error(ctx, "list keys failed", "error", err)
		msg := Message(err, "Failed to fetch keys")
		f.store.Commit(t, func(s *store.Store) { s.SetError(msg) })
		f.notifier.Error(errorTitle, msg)
		return err
	}

	f.store.Commit(t, func(s *store.Store) {
		s.ClearError()
		s.SetAll(keys)
	})
	return nil
}

// Create validates form and inserts a new key.
func (f *KeyFlows) Create(ctx context.Context, form *KeyForm) (*models.SecurityKey, error) {
	if !form.begin() {
		return nil, ErrSubmitting
	}
	defer form.end()

	in := form.Input()
	if err := in.Validate(); err != nil {
		f.notifier.Error(errorTitle, err.Error())
		return nil, err
	}

	k, err := f.records.Insert(ctx, in)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		f.logger.Error(ctx, "create key failed", "error", err)
		f.notifier.Error(errorTitle, Message(err, "Failed to create key"))
		return nil, err
	}

	f.store.Add(k)
	f.notifier.Success("Key created", "Your security key has been created successfully.")
	f.navigator.Navigate(RouteKeys)
	return k, nil
}

// Load fetches one key and focuses it. On failure the user is sent back to
// the key list.
func (f *KeyFlows) Load(ctx context.Context, id string) (*models.SecurityKey, error) {
	t := f.store.Begin(keyResource(id))

	k, err := f.records.Get(ctx, id)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		f.logger.Error(ctx, "load key failed", "id", id, "error", err)
		f.notifier.Error(errorTitle, Message(err, "Failed to fetch key details"))
		f.navigator.Navigate(RouteKeys)
		return nil, err
	}

	f.store.Commit(t, func(s *store.Store) { s.Select(k) })
	return k, nil
}

// Update sends the full editable field set of form for key id.
func (f *KeyFlows) Update(ctx context.Context, id string, form *KeyForm) (*models.SecurityKey, error) {
	if !form.begin() {
		return nil, ErrSubmitting
	}
	defer form.end()

	in := form.Input()
	if err := in.Validate(); err != nil {
		f.notifier.Error(errorTitle, err.Error())
		return nil, err
	}

	t := f.store.Begin(keyResource(id))
	k, err := f.records.Update(ctx, id, in)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		f.logger.Error(ctx, "update key failed", "id", id, "error", err)
		f.notifier.Error(errorTitle, Message(err, "Failed to update key"))
		return nil, err
	}

	f.store.Commit(t, func(s *store.Store) { s.Update(k) })
	f.notifier.Success("Key updated", "Your security key has been updated successfully.")
	f.navigator.Navigate(KeyRoute(id))
	return k, nil
}

// Delete removes key id after the user confirms. It reports whether the key
// was deleted; a declined confirmation is not an error.
func (f *KeyFlows) Delete(ctx context.Context, id string) (bool, error) {
	if !f.confirmer.Confirm(ctx, "Are you sure?", "This action cannot be undone. This will permanently delete the security key.") {
		return false, nil
	}

	err := f.records.Delete(ctx, id)
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		f.logger.Error(ctx, "delete key failed", "id", id, "error", err)
		f.notifier.Error(errorTitle, Message(err, "Failed to delete key"))
		return false, err
	}

	f.store.Retire(keyResource(id), func(s *store.Store) { s.Remove(id) })
	f.notifier.Success("Key deleted", "The security key has been deleted successfully.")
	f.navigator.Navigate(RouteKeys)
	return true, nil
}
