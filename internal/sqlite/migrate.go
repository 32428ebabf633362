package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/random"
)

// migrateTo ensures that the database schema matches the target schema definition.
//
// We employ a very simple declarative schema migration that:
//
// 1. Deletes deleted tables,
// 2. Creates new tables,
// 3. Migrates changed tables using the 12-step schema migration
// https://www.sqlite.org/lang_altertable.html#otheralter,
// 4. Synchronizes indexes, triggers, and views by name.
//
// Inspired by https://david.rothlis.net/declarative-schema-migration-for-sqlite/
func (db *Database) migrateTo(ctx context.Context, schemaDefinition string) error {
	var err error
	// 12-step schema migration starts here. See https://www.sqlite.org/lang_altertable.html#otheralter.

	// Step 1: Disable foreign key validation temporarily.
	if _, err = db.ReadWrite.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return errors.Wrap(err, "disable foreign key validation")
	}
	// Step 12: Re-enable foreign key validation.
	defer func() {
		if _, err = db.ReadWrite.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			err = errors.Wrap(err, "re-enable foreign key validation")
			db.logger.LogAttrs(ctx, slog.LevelError, "exit to avoid data corruption", errors.SlogError(err))
			if err = syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
				os.Exit(1)
			}
		}
	}()

	// Step 2: Start transaction.
	var tx *sql.Tx
	if tx, err = db.ReadWrite.BeginTx(ctx, nil); err != nil {
		return errors.Wrap(err, "start transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Create the target schema against a temporary database so that we know what has changed.
	var (
		randomID     string
		dbNameLength uint = 20
	)
	if randomID, err = random.Letters(dbNameLength); err != nil {
		return errors.Wrap(err, "generate random ID")
	}
	schemaTargetDataSourceName := fmt.Sprintf("file:%s?mode=memory&cache=shared", randomID)
	schemaTargetDatabase, err := sql.Open("sqlite3", schemaTargetDataSourceName)
	if err != nil {
		return errors.Wrap(err, "open schema target database")
	}
	defer func() {
		if closeErr := schemaTargetDatabase.Close(); closeErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to close schema target database",
				errors.SlogError(closeErr))
		}
	}()
	if _, err = schemaTargetDatabase.ExecContext(ctx, schemaDefinition); err != nil {
		return errors.Wrap(err, "prepare schema target database")
	}
	if _, err = tx.ExecContext(ctx, "ATTACH DATABASE ? AS schemaTarget", schemaTargetDataSourceName); err != nil {
		return errors.Wrap(err, "attach schema target database")
	}
	defer func() {
		if _, detachErr := tx.ExecContext(ctx, "DETACH DATABASE schemaTarget"); detachErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to detach schema target database")
		}
	}()

	// Steps 3-7 migrate tables.
	if err = db.syncTables(ctx, tx); err != nil {
		return errors.Wrap(err, "synchronize tables")
	}

	// Steps 8-9: Recreate indexes, triggers, and views.
	if err = db.syncAuxiliaryObjects(ctx, tx); err != nil {
		return errors.Wrap(err, "synchronize indexes, triggers, and views")
	}

	// Step 10: Check foreign key constraints.
	if _, err = tx.ExecContext(ctx, "PRAGMA foreign_key_check"); err != nil {
		return errors.Wrap(err, "foreign key check")
	}

	// Step 11: Commit transaction from step 2.
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	// Step 12: is in defer above.

	return nil
}

// syncTables drops deleted tables, creates new ones, and migrates changed ones.
func (db *Database) syncTables(ctx context.Context, tx *sql.Tx) error {
	var err error

	// Drop deleted tables.
	var deletedTables []string
	if deletedTables, err = db.queryStringSlice(ctx, tx, `SELECT current.name
FROM sqlite_schema AS current
LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = 'table' AND target.type IS NULL AND current.name NOT LIKE 'sqlite_%';`); err != nil {
		return errors.Wrap(err, "query deleted tables")
	}
	for _, table := range deletedTables {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping table", slog.String("table", table))
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE "%s";`, table)); err != nil {
			return errors.Wrap(err, "drop table", slog.String("table", table))
		}
	}

	// Create new tables.
	var newTableSQLs []string
	if newTableSQLs, err = db.queryStringSlice(ctx, tx, `SELECT target.sql
FROM schemaTarget.sqlite_schema AS target
LEFT JOIN sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type = 'table' AND current.type IS NULL AND target.name NOT LIKE 'sqlite_%';`); err != nil {
		return errors.Wrap(err, "query new table SQLs")
	}
	for _, newTableSQL := range newTableSQLs {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating table", slog.String("query", newTableSQL))
		if _, err = tx.ExecContext(ctx, newTableSQL); err != nil {
			return errors.Wrap(err, "create table")
		}
	}

	// Identify tables with changed schema and continue the 12-step schema migration with them.
	var changedTables []changedObject
	if changedTables, err = db.queryChangedObjects(ctx, tx, "table"); err != nil {
		return errors.Wrap(err, "query changed tables")
	}

	for _, table := range changedTables {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "migrating table",
			slog.String("table", table.name),
			slog.String("current_sql", table.currentSQL),
			slog.String("new_sql", table.newSQL))

		// Step 4: Create the table according to the new schema on a temporary name.
		tempName := table.name + "_migration_temp"
		tempNameSQL := strings.Replace(table.newSQL, table.name, tempName, 1)
		if _, err = tx.ExecContext(ctx, tempNameSQL); err != nil {
			return errors.Wrap(err, "create new table on temporary name", slog.String("query", tempNameSQL))
		}

		// Step 5: Copy common columns between tables.
		var commonColumns []string
		if commonColumns, err = db.queryCommonColumns(ctx, tx, table.name); err != nil {
			return errors.Wrap(err, "query common columns")
		}
		common := strings.Join(commonColumns, ", ")
		copySQL := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s;", //nolint:gosec // we trust the query.
			tempName, common, common, table.name)
		db.logger.LogAttrs(ctx, slog.LevelInfo, "copying data", slog.String("query", copySQL))
		if _, err = tx.ExecContext(ctx, copySQL); err != nil {
			return errors.Wrap(err, "copy data")
		}

		// Step 6: Drop the old table.
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE "%s";`, table.name)); err != nil {
			return errors.Wrap(err, "drop old table")
		}

		// Step 7: Rename the new table to the old table's name.
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`ALTER TABLE "%s" RENAME TO "%s";`,
			tempName, table.name)); err != nil {
			return errors.Wrap(err, "rename new table")
		}
	}
	return nil
}

// syncAuxiliaryObjects reconciles indexes, triggers, and views with the target schema.
//
// Dropping a table drops its indexes and triggers with it, so this has to run after
// syncTables to recreate the ones belonging to migrated tables.
func (db *Database) syncAuxiliaryObjects(ctx context.Context, tx *sql.Tx) error {
	var err error

	// Auto-generated objects have NULL sql and cannot be dropped or recreated.
	var deleted []changedObject
	if deleted, err = db.queryObjects(ctx, tx, `SELECT current.type, current.name
FROM sqlite_schema AS current
LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type IN ('index', 'trigger', 'view') AND target.type IS NULL
  AND current.sql IS NOT NULL AND current.name NOT LIKE 'sqlite_%';`); err != nil {
		return errors.Wrap(err, "query deleted objects")
	}
	for _, object := range deleted {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping object",
			slog.String("type", object.objectType), slog.String("name", object.name))
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP %s "%s";`,
			strings.ToUpper(object.objectType), object.name)); err != nil {
			return errors.Wrap(err, "drop object", slog.String("name", object.name))
		}
	}

	var changed []changedObject
	if changed, err = db.queryObjects(ctx, tx, `SELECT target.type, target.name, current.sql, target.sql
FROM schemaTarget.sqlite_schema AS target
LEFT JOIN sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type IN ('index', 'trigger', 'view') AND target.sql IS NOT NULL
  AND target.name NOT LIKE 'sqlite_%' AND (current.sql IS NULL OR current.sql <> target.sql);`); err != nil {
		return errors.Wrap(err, "query new and changed objects")
	}
	for _, object := range changed {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "recreating object",
			slog.String("type", object.objectType), slog.String("name", object.name))
		if object.currentSQL != "" {
			if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP %s "%s";`,
				strings.ToUpper(object.objectType), object.name)); err != nil {
				return errors.Wrap(err, "drop changed object", slog.String("name", object.name))
			}
		}
		if _, err = tx.ExecContext(ctx, object.newSQL); err != nil {
			return errors.Wrap(err, "create object", slog.String("query", object.newSQL))
		}
	}
	return nil
}

func (db *Database) queryCommonColumns(ctx context.Context, tx *sql.Tx, table string) ([]string, error) {
	var (
		commonColumns []string
		err           error
	)
	// We wrap the column names in double quotes to handle column names that are SQLite keywords.
	if commonColumns, err = db.queryStringSlice(ctx, tx, `SELECT '"' || target.name || '"'
FROM PRAGMA_TABLE_INFO(:table_name) AS current
JOIN PRAGMA_TABLE_INFO(:table_name, 'schemaTarget') AS target ON target.name = current.name;`,
		sql.Named("table_name", table)); err != nil {
		return nil, errors.Wrap(err, "query string slice")
	}
	return commonColumns, nil
}

// queryStringSlice returns a slice of strings from a query and its args.
//
// It is used to query a single column from a table.
func (db *Database) queryStringSlice(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]string, error) {
	var (
		results []string
		rows    *sql.Rows
		err     error
	)
	if rows, err = tx.QueryContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			db.logger.Error("could not close rows", errors.SlogError(closeErr))
		}
	}()
	for rows.Next() {
		var result string
		if err = rows.Scan(&result); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		results = append(results, result)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}
	return results, nil
}

type changedObject struct {
	objectType string
	name       string
	currentSQL string
	newSQL     string
}

// queryChangedObjects returns objects of the given type whose schema differs between the
// current database and the target schema.
func (db *Database) queryChangedObjects(ctx context.Context, tx *sql.Tx, objectType string) ([]changedObject, error) {
	return db.queryObjects(ctx, tx, `SELECT current.type, current.name, current.sql, target.sql
FROM sqlite_schema AS current
JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = ? AND current.name NOT LIKE 'sqlite_%' AND current.sql <> target.sql;`, objectType)
}

func (db *Database) queryObjects(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]changedObject, error) {
	var (
		objects []changedObject
		rows    *sql.Rows
		err     error
	)
	if rows, err = tx.QueryContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			db.logger.Error("could not close rows", errors.SlogError(closeErr))
		}
	}()
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "read columns")
	}
	for rows.Next() {
		var (
			object     changedObject
			currentSQL sql.NullString
			newSQL     sql.NullString
		)
		switch len(columns) {
		case 2: //nolint:mnd // type and name
			err = rows.Scan(&object.objectType, &object.name)
		default:
			err = rows.Scan(&object.objectType, &object.name, &currentSQL, &newSQL)
			object.currentSQL = currentSQL.String
			object.newSQL = newSQL.String
		}
		if err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		objects = append(objects, object)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}
	return objects, nil
}
