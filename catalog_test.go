package turboquery

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

const routinesQuery = `SELECT
  routine_catalog,
  routine_schema,
  routine_name,
  COALESCE(routine_type, '')
FROM information_schema.routines`

func TestRoutineConditions(t *testing.T) {
	conds, vals := routineConditions(RoutineFilter{
		Schema: "TurboQuery",
		Name:   "SP_%",
		Types:  []string{"PROCEDURE", "FUNCTION"},
	})
	require.Equal(t, []string{
		"routine_schema LIKE @p1",
		"routine_name LIKE @p2",
		"routine_type IN (@p3, @p4)",
	}, conds)
	require.Equal(t, []any{"TurboQuery", "SP_%", "PROCEDURE", "FUNCTION"}, vals)

	conds, vals = routineConditions(RoutineFilter{})
	require.Empty(t, conds)
	require.Empty(t, vals)
}

func TestClientRoutines(t *testing.T) {
	c, mock := newTestClient(t)
	mock.ExpectQuery(routinesQuery + "\nORDER BY routine_schema, routine_name").
		WillReturnRows(sqlmock.NewRows([]string{"routine_catalog", "routine_schema", "routine_name", ""}).
			AddRow("app", "TurboQuery", "SP_BatchingRecords", "PROCEDURE").
			AddRow("app", "dbo", "fn_total", "FUNCTION"))

	got, err := c.Routines(context.Background(), RoutineFilter{})
	require.NoError(t, err)
	require.Equal(t, []Routine{
		{Catalog: "app", Schema: "TurboQuery", Name: "SP_BatchingRecords", Type: "PROCEDURE"},
		{Catalog: "app", Schema: "dbo", Name: "fn_total", Type: "FUNCTION"},
	}, got)
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, "SP[_]BatchingRecords", escapeLike("SP_BatchingRecords"))
	require.Equal(t, "a[%]b[[]c]", escapeLike("a%b[c]"))
	require.Equal(t, "plain", escapeLike("plain"))
}

func TestSplitProcedureName(t *testing.T) {
	testCases := []struct {
		in, schema, name string
	}{
		{"SP_BatchingRecords", "", "SP_BatchingRecords"},
		{"TurboQuery.SP_BatchingRecords", "TurboQuery", "SP_BatchingRecords"},
		{"[TurboQuery].[SP_BatchingRecords]", "TurboQuery", "SP_BatchingRecords"},
		{"app.TurboQuery.SP_BatchingRecords", "TurboQuery", "SP_BatchingRecords"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			schema, name := splitProcedureName(tc.in)
			require.Equal(t, tc.schema, schema)
			require.Equal(t, tc.name, name)
		})
	}
}

func TestClientProcedureExists(t *testing.T) {
	const query = routinesQuery + `
WHERE routine_schema LIKE @p1 AND routine_name LIKE @p2 AND routine_type IN (@p3)
ORDER BY routine_schema, routine_name`

	t.Run("Found", func(t *testing.T) {
		c, mock := newTestClient(t)
		mock.ExpectQuery(query).
			WithArgs("TurboQuery", "SP[_]BatchingRecords", "PROCEDURE").
			WillReturnRows(sqlmock.NewRows([]string{"routine_catalog", "routine_schema", "routine_name", ""}).
				AddRow("app", "TurboQuery", "SP_BatchingRecords", "PROCEDURE"))

		ok, err := c.ProcedureExists(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("Missing", func(t *testing.T) {
		c, mock := newTestClient(t)
		mock.ExpectQuery(query).
			WithArgs("TurboQuery", "SP[_]BatchingRecords", "PROCEDURE").
			WillReturnRows(sqlmock.NewRows([]string{"routine_catalog", "routine_schema", "routine_name", ""}))

		ok, err := c.ProcedureExists(context.Background())
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("ThreePartName", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		opts := testOptions()
		opts.ProcedureName = "[app].[dbo].[page_rows]"
		c, err := New(db, opts)
		require.NoError(t, err)

		mock.ExpectQuery(query).
			WithArgs("dbo", "page[_]rows", "PROCEDURE").
			WillReturnRows(sqlmock.NewRows([]string{"routine_catalog", "routine_schema", "routine_name", ""}))

		ok, err := c.ProcedureExists(context.Background())
		require.NoError(t, err)
		require.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
