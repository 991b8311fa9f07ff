package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			dir, err := Dir(driver)
			require.NoError(t, err)

			entries, err := fs.ReadDir(FS, dir)
			require.NoError(t, err)
			assert.Len(t, entries, 2)
		})
	}

	_, err := Dir("oracle")
	assert.Error(t, err)
}
