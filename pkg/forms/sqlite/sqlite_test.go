package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/forms/sqlite"
	"github.com/goliatone/go-formdesigner/pkg/testsupport"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	store, err := sqlite.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore(t *testing.T) {
	testsupport.RunStoreSuite(t, func(t *testing.T) forms.Store {
		return openStore(t)
	})
}

func TestOpen_MigrateIsIdempotent(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Ping(context.Background()))
}
