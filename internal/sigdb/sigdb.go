// Package sigdb persists function signatures in SQLite and serves them as a
// call resolution declaration provider.
//
// Types are stored as their canonical names and read back through the type
// syntax reader, so a stored signature renders the same after a round trip.
package sigdb

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jacoelho/xqsem/internal/callbind"
	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/seqtype"
	"github.com/jacoelho/xqsem/internal/typesyntax"
)

const schema = `
create table if not exists functions (
	id integer not null primary key,
	namespace text not null,
	local text not null,
	prefix text not null,
	form integer not null,
	arity integer not null,
	variadic integer not null,
	return_type text,
	unique (namespace, local, arity, variadic)
);
create table if not exists params (
	function_id integer not null,
	position integer not null,
	name text not null,
	type text,
	primary key (function_id, position)
);`

// DB is a signature store.
type DB struct {
	db *sql.DB
}

// Open opens the SQLite database at dsn, creating the schema if needed.
// Use ":memory:" for a private in-memory store.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open signature db: %w", err)
	}
	// each :memory: connection is a separate database
	db.SetMaxOpenConns(1)
	store, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an open database handle, creating the schema if needed.
func New(db *sql.DB) (*DB, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create signature schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Put stores sig, replacing a signature with the same name, arity and
// variadic marker.
func (d *DB) Put(ctx context.Context, sig callbind.Signature) error {
	return d.Import(ctx, func(yield func(callbind.Signature) bool) {
		yield(sig)
	})
}

// Import stores every signature from sigs in a single transaction.
func (d *DB) Import(ctx context.Context, sigs iter.Seq[callbind.Signature]) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for sig := range sigs {
		if err := put(ctx, tx, sig); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func put(ctx context.Context, tx *sql.Tx, sig callbind.Signature) error {
	name := sig.Name
	if !name.HasNamespace() || name.IsIncomplete() {
		return fmt.Errorf("store %s: function name has no namespace", name)
	}
	ns := name.Namespace.String()
	local := name.Local.Value()
	arity := sig.DeclaredArity()

	var id int64
	err := tx.QueryRowContext(ctx,
		`select id from functions where namespace = ? and local = ? and arity = ? and variadic = ?`,
		ns, local, arity, int(sig.Variadic)).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return fmt.Errorf("store %s: %w", name, err)
	default:
		if _, err := tx.ExecContext(ctx, `delete from params where function_id = ?`, id); err != nil {
			return fmt.Errorf("store %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `delete from functions where id = ?`, id); err != nil {
			return fmt.Errorf("store %s: %w", name, err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`insert into functions (namespace, local, prefix, form, arity, variadic, return_type) values (?, ?, ?, ?, ?, ?, ?)`,
		ns, local, name.Prefix.Value(), int(name.Form), arity, int(sig.Variadic), typeText(sig.Return))
	if err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	for i, p := range sig.Params {
		if _, err := tx.ExecContext(ctx,
			`insert into params (function_id, position, name, type) values (?, ?, ?, ?)`,
			id, i, p.Name.Local.Value(), typeText(p.Type)); err != nil {
			return fmt.Errorf("store %s param %d: %w", name, i, err)
		}
	}
	return nil
}

// Lookup returns the signatures stored under the expanded name, ordered by
// declared arity.
func (d *DB) Lookup(ctx context.Context, name qname.QName) ([]callbind.Signature, error) {
	if !name.HasNamespace() || name.IsIncomplete() {
		return nil, nil
	}
	rows, err := d.db.QueryContext(ctx,
		`select id, prefix, form, variadic, return_type from functions where namespace = ? and local = ? order by arity, variadic`,
		name.Namespace.String(), name.Local.Value())
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}

	type stored struct {
		id  int64
		sig callbind.Signature
	}
	var found []stored
	for rows.Next() {
		var (
			id       int64
			prefix   string
			form     int
			variadic int
			ret      sql.NullString
		)
		if err := rows.Scan(&id, &prefix, &form, &variadic, &ret); err != nil {
			rows.Close()
			return nil, fmt.Errorf("lookup %s: %w", name, err)
		}
		sigName := qname.Lexical(prefix, name.Local.Value()).Expanded(name.Namespace)
		sigName.Form = qname.Form(form)
		found = append(found, stored{id: id, sig: callbind.Signature{
			Name:     sigName,
			Variadic: callbind.Variadic(variadic),
			Return:   readType(ret),
		}})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}
	rows.Close()

	out := make([]callbind.Signature, 0, len(found))
	for _, s := range found {
		params, err := d.params(ctx, s.id)
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", name, err)
		}
		s.sig.Params = params
		out = append(out, s.sig)
	}
	return out, nil
}

func (d *DB) params(ctx context.Context, id int64) ([]callbind.Param, error) {
	rows, err := d.db.QueryContext(ctx,
		`select name, type from params where function_id = ? order by position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var params []callbind.Param
	for rows.Next() {
		var (
			local string
			typ   sql.NullString
		)
		if err := rows.Scan(&local, &typ); err != nil {
			return nil, err
		}
		params = append(params, callbind.Param{
			Name: qname.Lexical("", local).Expanded(qname.NamespaceEmpty),
			Type: readType(typ),
		})
	}
	return params, rows.Err()
}

// Signatures implements callbind.DeclarationProvider. Database errors yield
// no candidates; use Lookup to observe them.
func (d *DB) Signatures(name qname.QName, _ int) []callbind.Signature {
	sigs, err := d.Lookup(context.Background(), name)
	if err != nil {
		return nil
	}
	return sigs
}

// Count reports the number of stored signatures.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `select count(*) from functions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count signatures: %w", err)
	}
	return n, nil
}

func typeText(t *seqtype.SequenceType) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.TypeName(), Valid: true}
}

func readType(s sql.NullString) *seqtype.SequenceType {
	if !s.Valid {
		return nil
	}
	t := typesyntax.ParseSequenceType(s.String)
	return &t
}
