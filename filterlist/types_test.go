package filterlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a96tudor/python-abp/filterlist"
)

func TestLineKinds(t *testing.T) {
	tests := []struct {
		line filterlist.Line
		kind filterlist.Kind
	}{
		{filterlist.Header{Version: "2.0"}, filterlist.KindHeader},
		{filterlist.Metadata{Key: "Title", Value: "Example"}, filterlist.KindMetadata},
		{filterlist.Empty{}, filterlist.KindEmpty},
		{filterlist.Comment{Text: "Comment"}, filterlist.KindComment},
		{filterlist.Include{Target: "other.txt"}, filterlist.KindInclude},
		{filterlist.Filter{Text: "abc$image"}, filterlist.KindFilter},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.line.Kind())
		})
	}
}

func TestOption(t *testing.T) {
	opt := filterlist.NewOption("domain", []any{"abc.com"})

	assert.Equal(t, "domain", opt.Name())
	assert.Equal(t, []any{"abc.com"}, opt.Value())
	assert.Len(t, opt, 2)
}
