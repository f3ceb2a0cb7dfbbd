// Package catalog stores the recipe catalog in a single sqlite database:
// users, recipe categories, recipes and their ratings.
//
// All access goes through a Store which wraps the underlying connection,
// callers never see database/sql types.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type (
	Store struct {
		db        *sql.DB
		writeable bool
	}
)

func openCatalogDatabase(ctx context.Context, path string, readwrite bool) (*sql.DB, error) {
	var connstr string
	if readwrite {
		connstr = fmt.Sprintf("file:%v?_journal=wal&_foreign_keys=on&mode=rwc", path)
	} else {
		connstr = fmt.Sprintf("file:%v?_foreign_keys=on&mode=ro", path)
	}
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %v", path, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping catalog %v, cause %v", path, err)
	}
	return conn, nil
}

// Open loads the catalog at the given path, creating the schema when
// opened in read-write mode.
func Open(ctx context.Context, path string, readwrite bool) (*Store, error) {
	conn, err := openCatalogDatabase(ctx, path, readwrite)
	if err != nil {
		return nil, err
	}
	s := &Store{db: conn, writeable: readwrite}
	if readwrite {
		err = s.init(ctx)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to init catalog %v, cause %v", path, err)
		}
	}
	return s, nil
}

func (s *Store) nextSeq(ctx context.Context, seq string) (int64, error) {
	var val int64
	err := s.db.QueryRowContext(ctx, `insert into counters (name, val) values (?, 1) on conflict do update set val = val + 1 returning val`, seq).Scan(&val)
	if err != nil {
		return 0, fmt.Errorf("unable to increment sequence %v, cause %w", seq, err)
	}
	return val, nil
}

func (s *Store) init(ctx context.Context) error {
	for _, cmd := range []string{
		`create table if not exists counters(
			name text not null primary key,
			val integer not null
		)`,
		`create table if not exists users(
			user_id integer primary key autoincrement,
			username text not null unique,
			username_hash64 integer not null,
			email text not null,
			password text not null
		)`,
		`create index if not exists idx_users_username_hash64
			on users(username_hash64)
		`,
		`create table if not exists categories(
			category_id integer not null primary key,
			name text not null unique
		)`,
		`create table if not exists recipes(
			recipe_id integer not null primary key,
			title text not null,
			description text not null,
			ingredients text not null,
			preparation_steps text not null,
			cooking_time integer not null,
			serving_size integer not null,
			category_id integer,
			author_id integer,
			foreign key (category_id) references categories(category_id),
			foreign key (author_id) references users(user_id)
		)`,
		`create table if not exists ratings(
			rating_id integer not null primary key,
			rating integer not null,
			review text,
			recipe_id integer not null,
			user_id integer not null,
			foreign key (recipe_id) references recipes(recipe_id),
			foreign key (user_id) references users(user_id)
		)`,
		`create index if not exists idx_ratings_recipe
			on ratings(recipe_id)
		`,
	} {
		_, err := s.db.ExecContext(ctx, cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
