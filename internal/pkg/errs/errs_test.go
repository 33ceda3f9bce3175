//go:build unit

package errs_test

import (
	"errors"
	"strings"
	"testing"

	"riad-booking/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

var errRoot = errors.New("room is not part of the catalog")

func TestMark(t *testing.T) {
	err := errs.Mark(errs.Wrap(errRoot, "update criteria"), errs.ErrValidation)

	assert.Equal(t, "update criteria: room is not part of the catalog", err.Error())
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.ErrorIs(t, err, errRoot)
	assert.True(t, cr.Is(err, errs.ErrValidation))

	assert.Equal(t, errs.ErrValidation, errs.Mark(nil, errs.ErrValidation))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Mark(errs.New("boom"), errs.ErrValidation)

	lines := errs.ExtractStackLines(err, 5)
	assert.Len(t, lines, 5)
	assert.True(t, strings.Contains(strings.Join(lines, "\n"), "boom"))

	assert.Nil(t, errs.ExtractStackLines(nil, 5))
}
