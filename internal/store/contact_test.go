package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"contact-book/internal/database"
	"contact-book/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeContactRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==12 → GetContactByID / ListContacts
// 2) len(dest)==3  → CreateContact (id, created_at, updated_at)
type fakeContactRow struct {
	scanErr error
	contact *model.Contact
}

func (r *fakeContactRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	ct := r.contact
	switch len(dest) {
	case 12:
		*dest[0].(*int) = ct.ID
		*dest[1].(*string) = ct.Name
		*dest[2].(*string) = ct.Title
		*dest[3].(*string) = ct.Category
		*dest[4].(*string) = ct.Email
		*dest[5].(*string) = ct.Phone
		*dest[6].(*string) = ct.Company
		*dest[7].(*string) = ct.Address
		*dest[8].(*string) = ct.Image
		*dest[9].(*int) = ct.UserID
		*dest[10].(*time.Time) = ct.CreatedAt
		*dest[11].(*time.Time) = ct.UpdatedAt
	case 3:
		*dest[0].(*int) = ct.ID
		*dest[1].(*time.Time) = ct.CreatedAt
		*dest[2].(*time.Time) = ct.UpdatedAt
	default:
		panic("fakeContactRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeContactRows 以切片驅動的 pgx.Rows 實作
type fakeContactRows struct {
	contacts []model.Contact
	idx      int
	scanErr  error
	rowsErr  error
}

func (r *fakeContactRows) Close()                                       {}
func (r *fakeContactRows) Err() error                                   { return r.rowsErr }
func (r *fakeContactRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeContactRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeContactRows) Next() bool {
	if r.idx < len(r.contacts) {
		r.idx++
		return true
	}
	return false
}
func (r *fakeContactRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := fakeContactRow{contact: &r.contacts[r.idx-1]}
	return row.Scan(dest...)
}
func (r *fakeContactRows) Values() ([]any, error) { return nil, nil }
func (r *fakeContactRows) RawValues() [][]byte    { return nil }
func (r *fakeContactRows) Conn() *pgx.Conn        { return nil }

func sampleContact(id int) model.Contact {
	now := time.Now().UTC()
	return model.Contact{
		ID:        id,
		Name:      "Bob",
		Title:     "Engineer",
		Category:  "work",
		Email:     "bob@example.com",
		Phone:     "0912345678",
		Company:   "Acme",
		Address:   "Taipei",
		Image:     "/uploads/abc.png",
		UserID:    1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestListContacts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rows := &fakeContactRows{contacts: []model.Contact{sampleContact(1), sampleContact(2)}}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		contacts, err := ListContacts(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		require.Equal(t, 1, contacts[0].ID)
		require.Equal(t, 2, contacts[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeContactRows{}, nil
			},
		}
		contacts, err := ListContacts(context.Background(), db)
		require.NoError(t, err)
		require.NotNil(t, contacts)
		require.Empty(t, contacts)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListContacts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeContactRows{contacts: []model.Contact{sampleContact(1)}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListContacts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeContactRows{rowsErr: errors.New("rows")}, nil
			},
		}
		_, err := ListContacts(context.Background(), db)
		require.Error(t, err)
	})
}

func TestGetContactByID(t *testing.T) {
	sample := sampleContact(5)

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeContactRow{contact: &sample}
			},
		}
		ct, err := GetContactByID(context.Background(), db, 5)
		require.NoError(t, err)
		require.Equal(t, "Bob", ct.Name)
		require.Equal(t, "/uploads/abc.png", ct.Image)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeContactRow{scanErr: pgx.ErrNoRows}
			},
		}
		ct, err := GetContactByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, ct)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeContactRow{scanErr: errors.New("scan")}
			},
		}
		_, err := GetContactByID(context.Background(), db, 1)
		require.Error(t, err)
	})
}

func TestCreateContact(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeContactRow{contact: &model.Contact{ID: 9, CreatedAt: now, UpdatedAt: now}}
			},
		}
		ct := sampleContact(0)
		created, err := CreateContact(context.Background(), db, &ct)
		require.NoError(t, err)
		require.Equal(t, 9, created.ID)
	})

	t.Run("error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeContactRow{scanErr: errors.New("insert")}
			},
		}
		ct := sampleContact(0)
		_, err := CreateContact(context.Background(), db, &ct)
		require.Error(t, err)
	})
}

func TestUpdateAndDeleteContact(t *testing.T) {
	sample := sampleContact(3)

	t.Run("update", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateContact(context.Background(), db, &sample))

		db = &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("update")
			},
		}
		require.Error(t, UpdateContact(context.Background(), db, &sample))
	})

	t.Run("delete", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteContact(context.Background(), db, 3))

		db = &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("delete")
			},
		}
		require.Error(t, DeleteContact(context.Background(), db, 3))
	})
}
