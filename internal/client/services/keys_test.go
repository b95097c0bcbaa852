package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/client/store"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyFixture struct {
	records  *fakeRecords
	store    *store.Store
	notifier *recNotifier
	nav      *recNavigator
	confirm  *fixedConfirmer
	flows    *KeyFlows
}

func newKeyFixture() *keyFixture {
	fx := &keyFixture{
		records:  &fakeRecords{},
		store:    store.New(),
		notifier: &recNotifier{},
		nav:      &recNavigator{},
		confirm:  &fixedConfirmer{answer: true},
	}
	fx.flows = NewKeyFlows(fx.records, fx.store, fx.notifier, fx.nav, fx.confirm, logging.Nop{})
	return fx
}

func stored(id, name string) *models.SecurityKey {
	return &models.SecurityKey{ID: id, UserID: "u1", Name: name, Type: models.KeyTypePassword, Value: "secret", CreatedAt: now, UpdatedAt: now}
}

func TestList_LoadsNewestFirst(t *testing.T) {
	fx := newKeyFixture()
	fx.records.listRet = []*models.SecurityKey{stored("2", "b"), stored("1", "a")}

	require.NoError(t, fx.flows.List(context.Background()))

	assert.Equal(t, "created_at", fx.records.listQuery.OrderBy)
	assert.True(t, fx.records.listQuery.Desc)
	st := fx.store.Snapshot()
	require.Len(t, st.Keys, 2)
	assert.Equal(t, "2", st.Keys[0].ID)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

func TestList_FailureSetsErrorAndToasts(t *testing.T) {
	fx := newKeyFixture()
	fx.store.Add(stored("1", "a"))
	fx.records.listErr = remoteErr(common.ErrorUnavailable, "network error")

	require.Error(t, fx.flows.List(context.Background()))

	st := fx.store.Snapshot()
	assert.Len(t, st.Keys, 1, "store keeps its rows")
	assert.Equal(t, "network error", st.Error)
	assert.False(t, st.Loading)
	assert.Equal(t, toast{Title: "Error", Description: "network error", Err: true}, fx.notifier.last())
}

func TestList_FallbackMessage(t *testing.T) {
	fx := newKeyFixture()
	fx.records.listErr = remoteErr(common.ErrorInternal, "")

	require.Error(t, fx.flows.List(context.Background()))
	assert.Equal(t, "Failed to fetch keys", fx.notifier.last().Description)
}

func TestList_LoadingWhileInFlight(t *testing.T) {
	fx := newKeyFixture()
	var during bool
	fx.records.listHook = func(context.Context) { during = fx.store.Snapshot().Loading }

	require.NoError(t, fx.flows.List(context.Background()))
	assert.True(t, during)
	assert.False(t, fx.store.Snapshot().Loading)
}

func TestList_ClosedScopeDropsResult(t *testing.T) {
	fx := newKeyFixture()
	scope := NewScope(context.Background())
	fx.records.listRet = []*models.SecurityKey{stored("1", "a")}
	fx.records.listHook = func(context.Context) { scope.Close() }

	err := fx.flows.List(scope.Context())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fx.store.Snapshot().Keys)
	assert.Empty(t, fx.notifier.toasts)
	assert.False(t, scope.Alive())
}

func TestList_StaleResponseDropped(t *testing.T) {
	fx := newKeyFixture()
	fx.records.listRet = []*models.SecurityKey{stored("old", "old")}
	fx.records.listHook = func(context.Context) {
		fx.records.listHook = nil
		fx.records.listRet = []*models.SecurityKey{stored("new", "new")}
		require.NoError(t, fx.flows.List(context.Background()))
		fx.records.listRet = []*models.SecurityKey{stored("old", "old")}
	}

	require.NoError(t, fx.flows.List(context.Background()))

	st := fx.store.Snapshot()
	require.Len(t, st.Keys, 1)
	assert.Equal(t, "new", st.Keys[0].ID)
}

func TestCreate_GitHubTokenScenario(t *testing.T) {
	fx := newKeyFixture()
	form := NewKeyForm()
	form.Name = "GitHub Token"
	form.Type = models.KeyTypeAPIKey
	form.Value = "ghp_xxx"

	k, err := fx.flows.Create(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, &models.KeyInput{Name: "GitHub Token", Type: models.KeyTypeAPIKey, Value: "ghp_xxx"}, fx.records.insertIn)

	st := fx.store.Snapshot()
	require.Len(t, st.Keys, 1)
	assert.Equal(t, "srv-1", st.Keys[0].ID)
	assert.Equal(t, k.ID, st.Keys[0].ID)
	assert.False(t, st.Keys[0].CreatedAt.IsZero())
	assert.False(t, st.Keys[0].UpdatedAt.IsZero())

	assert.Equal(t, []string{"/dashboard/keys"}, fx.nav.routes)
	assert.Equal(t, toast{Title: "Key created", Description: "Your security key has been created successfully."}, fx.notifier.last())
	assert.False(t, form.Submitting())
}

func TestCreate_ValidationFailsWithoutRemoteCall(t *testing.T) {
	for _, tt := range []struct {
		name string
		mut  func(*KeyForm)
	}{
		{"name", func(f *KeyForm) { f.Name = "" }},
		{"value", func(f *KeyForm) { f.Value = "" }},
		{"type", func(f *KeyForm) { f.Type = "" }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			fx := newKeyFixture()
			form := NewKeyForm()
			form.Name, form.Value = "n", "v"
			tt.mut(form)

			_, err := fx.flows.Create(context.Background(), form)
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Zero(t, fx.records.calls)
			assert.True(t, fx.notifier.last().Err)
			assert.Empty(t, fx.nav.routes)
		})
	}
}

func TestCreate_RemoteFailureLeavesStore(t *testing.T) {
	fx := newKeyFixture()
	fx.records.insertErr = remoteErr(common.ErrorValidation, `invalid key type "x"`)
	form := NewKeyForm()
	form.Name, form.Value = "n", "v"

	_, err := fx.flows.Create(context.Background(), form)
	require.Error(t, err)
	assert.Empty(t, fx.store.Snapshot().Keys)
	assert.Equal(t, `invalid key type "x"`, fx.notifier.last().Description)
	assert.Empty(t, fx.nav.routes)
	assert.False(t, form.Submitting())
}

func TestCreate_RefusesDoubleSubmit(t *testing.T) {
	fx := newKeyFixture()
	form := NewKeyForm()
	form.Name, form.Value = "n", "v"
	require.True(t, form.begin())

	_, err := fx.flows.Create(context.Background(), form)
	require.ErrorIs(t, err, ErrSubmitting)
	assert.Zero(t, fx.records.calls)
}

func TestLoad_SelectsKey(t *testing.T) {
	fx := newKeyFixture()
	fx.records.getRet = stored("42", "GitHub Token")

	k, err := fx.flows.Load(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", k.ID)
	assert.Equal(t, "42", fx.store.Snapshot().Selected.ID)
	assert.Empty(t, fx.nav.routes)
}

func TestLoad_FailureNavigatesBackToList(t *testing.T) {
	fx := newKeyFixture()
	fx.records.getErr = remoteErr(common.ErrorNotFound, "key not found")

	_, err := fx.flows.Load(context.Background(), "404")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, []string{"/dashboard/keys"}, fx.nav.routes)
	assert.Equal(t, "key not found", fx.notifier.last().Description)
	assert.Nil(t, fx.store.Snapshot().Selected)
}

func TestLoad_ClosedScopeDoesNotNavigate(t *testing.T) {
	fx := newKeyFixture()
	scope := NewScope(context.Background())
	fx.records.getErr = remoteErr(common.ErrorUnavailable, "network error")
	fx.records.getHook = func(context.Context) { scope.Close() }

	_, err := fx.flows.Load(scope.Context(), "1")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fx.nav.routes)
	assert.Empty(t, fx.notifier.toasts)
}

func TestEdit_Key42Scenario(t *testing.T) {
	fx := newKeyFixture()
	orig := stored("42", "Original")
	orig.Tags = []string{"work"}
	fx.store.Add(stored("1", "other"))
	fx.store.Add(orig)
	fx.records.getRet = orig

	loaded, err := fx.flows.Load(context.Background(), "42")
	require.NoError(t, err)

	form := EditForm(loaded)
	form.Name = "Renamed"

	_, err = fx.flows.Update(context.Background(), "42", form)
	require.NoError(t, err)

	assert.Equal(t, "42", fx.records.updateID)
	assert.Equal(t, &models.KeyInput{
		Name:  "Renamed",
		Type:  models.KeyTypePassword,
		Value: "secret",
		Tags:  []string{"work"},
	}, fx.records.updateIn)

	st := fx.store.Snapshot()
	require.Len(t, st.Keys, 2)
	assert.Equal(t, "Renamed", st.Keys[1].Name)
	assert.Equal(t, "42", st.Keys[1].ID)
	assert.Equal(t, "Renamed", st.Selected.Name)

	assert.Equal(t, []string{"/dashboard/keys/42"}, fx.nav.routes)
	assert.Equal(t, "Key updated", fx.notifier.last().Title)
}

func TestUpdate_FailureLeavesStore(t *testing.T) {
	fx := newKeyFixture()
	fx.store.Add(stored("42", "Original"))
	fx.records.updateErr = remoteErr(common.ErrorUnavailable, "")

	form := EditForm(stored("42", "Original"))
	form.Name = "Renamed"
	_, err := fx.flows.Update(context.Background(), "42", form)
	require.Error(t, err)

	assert.Equal(t, "Original", fx.store.Snapshot().Keys[0].Name)
	assert.Equal(t, "Failed to update key", fx.notifier.last().Description)
	assert.Empty(t, fx.nav.routes)
}

func TestDelete_Key7NetworkErrorScenario(t *testing.T) {
	fx := newKeyFixture()
	fx.store.Add(stored("7", "seven"))
	fx.records.deleteErr = remoteErr(common.ErrorUnavailable, "network error")

	deleted, err := fx.flows.Delete(context.Background(), "7")
	require.Error(t, err)
	assert.False(t, deleted)

	st := fx.store.Snapshot()
	require.Len(t, st.Keys, 1)
	assert.Equal(t, "7", st.Keys[0].ID)

	last := fx.notifier.last()
	assert.True(t, last.Err)
	assert.Contains(t, last.Description, "network error")
	assert.Empty(t, fx.nav.routes)
}

func TestDelete_Success(t *testing.T) {
	fx := newKeyFixture()
	fx.store.Add(stored("7", "seven"))
	fx.store.Select(stored("7", "seven"))

	deleted, err := fx.flows.Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "7", fx.records.deleteID)

	st := fx.store.Snapshot()
	assert.Empty(t, st.Keys)
	assert.Nil(t, st.Selected)
	assert.Equal(t, []string{"/dashboard/keys"}, fx.nav.routes)
	assert.Equal(t, "Key deleted", fx.notifier.last().Title)
}

func TestDelete_WinsOverLoadCommittedMeanwhile(t *testing.T) {
	fx := newKeyFixture()
	fx.store.Add(stored("7", "seven"))
	fx.records.getRet = stored("7", "seven")
	fx.records.deleteHook = func(ctx context.Context) {
		_, err := fx.flows.Load(ctx, "7")
		require.NoError(t, err)
		require.Equal(t, "7", fx.store.Snapshot().Selected.ID)
	}

	deleted, err := fx.flows.Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.True(t, deleted)

	st := fx.store.Snapshot()
	assert.Empty(t, st.Keys)
	assert.Nil(t, st.Selected)
	assert.Equal(t, "Key deleted", fx.notifier.last().Title)
}

func TestDelete_VoidsLoadStillInFlight(t *testing.T) {
	fx := newKeyFixture()
	fx.store.Add(stored("7", "seven"))
	fx.records.getRet = stored("7", "seven")
	fx.records.getHook = func(ctx context.Context) {
		deleted, err := fx.flows.Delete(ctx, "7")
		require.NoError(t, err)
		require.True(t, deleted)
	}

	_, err := fx.flows.Load(context.Background(), "7")
	require.NoError(t, err)

	st := fx.store.Snapshot()
	assert.Empty(t, st.Keys)
	assert.Nil(t, st.Selected, "a read started before the delete must not refocus the key")
}

func TestDelete_DeclinedMakesNoCall(t *testing.T) {
	fx := newKeyFixture()
	fx.confirm.answer = false
	fx.store.Add(stored("7", "seven"))

	deleted, err := fx.flows.Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, fx.confirm.asked)
	assert.Zero(t, fx.records.calls)
	assert.Len(t, fx.store.Snapshot().Keys, 1)
}
