// internal/repository/postgres/bulk_repo_test.go
package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_valuesClause(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
		want string
	}{
		{
			name: "single_row_single_col",
			rows: 1,
			cols: 1,
			want: "($1)",
		},
		{
			name: "single_row_many_cols",
			rows: 1,
			cols: 3,
			want: "($1,$2,$3)",
		},
		{
			name: "placeholders_continue_across_rows",
			rows: 3,
			cols: 2,
			want: "($1,$2),($3,$4),($5,$6)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valuesClause(tt.rows, tt.cols))
		})
	}
}

func Test_NewBulkRepository_DefaultsBatchSize(t *testing.T) {
	r := NewBulkRepository(nil, 0)
	assert.Equal(t, defaultBatchSize, r.batchSize)

	r = NewBulkRepository(nil, 250)
	assert.Equal(t, 250, r.batchSize)
}
