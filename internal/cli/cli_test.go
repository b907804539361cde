package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/utils"
)

// 2024-03-15 is a Friday
var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestContext(t *testing.T, store storage.Provider) (*Context, *bytes.Buffer) {
	t.Helper()
	if store == nil {
		store = storage.NewMemoryStore()
	}
	out := &bytes.Buffer{}
	return &Context{Store: store, Clock: utils.FixedClock(testNow), Out: out}, out
}

// freshContext returns a new context over the same store, as a second command
// invocation would see it.
func freshContext(ctx *Context) (*Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Context{Store: ctx.Store, Clock: ctx.Clock, Out: out}, out
}
