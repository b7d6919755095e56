// AngelaMos | 2026
// migrations_test.go

package migrations

import (
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createTable = regexp.MustCompile(`(?i)CREATE TABLE IF NOT EXISTS (\w+)`)
	dropTable   = regexp.MustCompile(`(?i)DROP TABLE IF EXISTS (\w+)`)
)

func tableNames(re *regexp.Regexp, sql string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(sql, -1) {
		names = append(names, m[1])
	}
	return names
}

func TestDownDropsEveryTableUpCreates(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			raw, err := fs.ReadFile(FS, name)
			require.NoError(t, err)

			up, down, found := strings.Cut(string(raw), "-- +goose Down")
			require.True(t, found, "missing Down section")
			require.Contains(t, up, "-- +goose Up")

			created := tableNames(createTable, up)
			dropped := tableNames(dropTable, down)

			slices.Reverse(created)
			assert.Equal(t, created, dropped,
				"Down must drop the Up tables in reverse order")
		})
	}
}
