package store

import (
	"context"
	"errors"
	"fmt"

	"contact-book/internal/database"
	"contact-book/internal/model"

	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, name, title, category, email, phone, company, address, image, user_id, created_at, updated_at`

func scanContact(row pgx.Row) (*model.Contact, error) {
	ct := &model.Contact{}
	err := row.Scan(
		&ct.ID,
		&ct.Name,
		&ct.Title,
		&ct.Category,
		&ct.Email,
		&ct.Phone,
		&ct.Company,
		&ct.Address,
		&ct.Image,
		&ct.UserID,
		&ct.CreatedAt,
		&ct.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

func ListContacts(ctx context.Context, db database.DB) ([]model.Contact, error) {
	rows, err := db.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		ct, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("ListContacts: %w", err)
		}
		contacts = append(contacts, *ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	return contacts, nil
}

func GetContactByID(ctx context.Context, db database.DB, contactID int) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`,
		contactID,
	)
	ct, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetContactByID: %w", err)
	}
	return ct, nil
}

func CreateContact(ctx context.Context, db database.DB, ct *model.Contact) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO contacts (name, title, category, email, phone, company, address, image, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		ct.Name,
		ct.Title,
		ct.Category,
		ct.Email,
		ct.Phone,
		ct.Company,
		ct.Address,
		ct.Image,
		ct.UserID,
	)
	if err := row.Scan(&ct.ID, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateContact: %w", err)
	}
	return ct, nil
}

func UpdateContact(ctx context.Context, db database.DB, ct *model.Contact) error {
	_, err := db.Exec(ctx,
		`UPDATE contacts
		 SET name = $1, title = $2, category = $3, email = $4, phone = $5,
		     company = $6, address = $7, image = $8, updated_at = now()
		 WHERE id = $9`,
		ct.Name,
		ct.Title,
		ct.Category,
		ct.Email,
		ct.Phone,
		ct.Company,
		ct.Address,
		ct.Image,
		ct.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateContact: %w", err)
	}
	return nil
}

func DeleteContact(ctx context.Context, db database.DB, contactID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM contacts WHERE id = $1`,
		contactID,
	)
	if err != nil {
		return fmt.Errorf("DeleteContact: %w", err)
	}
	return nil
}
