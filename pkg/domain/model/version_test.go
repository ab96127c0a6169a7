package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseVersionTriple(t *testing.T) {
	t.Run("valid version", func(t *testing.T) {
		v, err := model.ParseVersionTriple("1.22.333")
		gt.NoError(t, err)
		gt.Value(t, v).Equal(model.VersionTriple{Major: 1, Minor: 22, Patch: 333})
		gt.Value(t, v.String()).Equal("1.22.333")
	})

	t.Run("leading zeros are plain integers", func(t *testing.T) {
		v, err := model.ParseVersionTriple("01.002.0")
		gt.NoError(t, err)
		gt.Value(t, v).Equal(model.VersionTriple{Major: 1, Minor: 2, Patch: 0})
	})

	for _, input := range []string{"", "1.2", "1.2.3.4", "1.x.3", "1.2.-3", "a.b.c", "99999999999999999999.0.0"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := model.ParseVersionTriple(input)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrParse))
		})
	}
}

func TestVersionTriple_Compare(t *testing.T) {
	v := func(a, b, c int) model.VersionTriple {
		return model.VersionTriple{Major: a, Minor: b, Patch: c}
	}

	gt.Number(t, v(1, 2, 3).Compare(v(1, 2, 3))).Equal(0)
	gt.Number(t, v(1, 2, 3).Compare(v(2, 0, 0))).Equal(-1)
	gt.Number(t, v(1, 10, 0).Compare(v(1, 9, 99))).Equal(1)
	gt.Number(t, v(1, 2, 3).Compare(v(1, 2, 4))).Equal(-1)
}

func TestVersionTriple_UpdateTo(t *testing.T) {
	tests := []struct {
		from, to string
		want     model.UpdateType
	}{
		{"1.2.3", "1.2.3", model.UpdateNoChange},
		{"2.0.0", "3.0.0", model.UpdateMajor},
		{"1.2.3", "1.3.0", model.UpdateMinor},
		{"1.2.3", "1.2.4", model.UpdatePatch},
		{"3.0.0", "2.9.9", model.UpdateMajor},
		{"1.0.9", "2.0.9", model.UpdateMajor},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			from, err := model.ParseVersionTriple(tt.from)
			gt.NoError(t, err)
			to, err := model.ParseVersionTriple(tt.to)
			gt.NoError(t, err)
			gt.Value(t, from.UpdateTo(to)).Equal(tt.want)
		})
	}
}

func TestUpdateType_IsSafe(t *testing.T) {
	gt.True(t, model.UpdateMinor.IsSafe())
	gt.True(t, model.UpdatePatch.IsSafe())
	gt.False(t, model.UpdateMajor.IsSafe())
	gt.False(t, model.UpdateNoChange.IsSafe())
}
