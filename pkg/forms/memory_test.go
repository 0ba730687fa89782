package forms_test

import (
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/testsupport"
)

func TestMemoryStore(t *testing.T) {
	testsupport.RunStoreSuite(t, func(*testing.T) forms.Store {
		return forms.NewMemoryStore()
	})
}
