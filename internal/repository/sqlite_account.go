// Package repository implements the data access facade over SQLite.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
)

// SQLiteStore implements gateway.Store using a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteStore creates a SQLiteStore over an opened database.
func NewSQLiteStore(database *sql.DB) *SQLiteStore {
	return NewSQLiteStoreWithUoW(database, db.NewSQLiteUnitOfWork(database))
}

// NewSQLiteStoreWithUoW creates a SQLiteStore with an explicit unit of
// work, letting tests inject transaction failures.
func NewSQLiteStoreWithUoW(database *sql.DB, uow db.UnitOfWork) *SQLiteStore {
	return &SQLiteStore{db: database, uow: uow}
}

var _ gateway.Store = (*SQLiteStore)(nil)

const accountColumns = `id, name, kind, stage, importance, last_contact_at, created_at, updated_at`

func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	byID := map[string]*domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	if err := s.loadChildren(ctx, byID); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *SQLiteStore) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading account: %w", err)
		}
		return nil, fmt.Errorf("account %s: %w", id, contract.ErrNotFound)
	}
	a, err := scanAccount(rows)
	if err != nil {
		return nil, err
	}

	if err := s.loadChildren(ctx, map[string]*domain.Account{a.ID: a}); err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAccount inserts the account and any nested contacts, checklist
// items and documents in one transaction.
func (s *SQLiteStore) CreateAccount(ctx context.Context, a *domain.Account) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, string(a.Kind), string(a.Stage), string(a.Importance),
			nullableTimeToString(a.LastContactAt, time.RFC3339),
			a.CreatedAt.UTC().Format(time.RFC3339),
			a.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting account: %w", err)
		}
		for i := range a.Contacts {
			if err := insertContact(ctx, tx, a.ID, &a.Contacts[i], i); err != nil {
				return err
			}
		}
		for i := range a.Checklist {
			if err := insertChecklistItem(ctx, tx, a.ID, &a.Checklist[i]); err != nil {
				return err
			}
		}
		for i := range a.Documents {
			if err := insertDocument(ctx, tx, a.ID, &a.Documents[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) UpdateAccount(ctx context.Context, a *domain.Account) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, kind = ?, stage = ?, importance = ?, last_contact_at = ?, updated_at = ?
			WHERE id = ?`,
		a.Name, string(a.Kind), string(a.Stage), string(a.Importance),
		nullableTimeToString(a.LastContactAt, time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %s: %w", a.ID, contract.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) AddContact(ctx context.Context, accountID string, c *domain.Contact) error {
	var next int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(order_index), -1) + 1 FROM contacts WHERE account_id = ?`,
		accountID).Scan(&next); err != nil {
		return fmt.Errorf("computing contact order: %w", err)
	}
	return insertContact(ctx, s.db, accountID, c, next)
}

func (s *SQLiteStore) AddActivity(ctx context.Context, accountID string, act *domain.Activity) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activities (id, account_id, type, title, description, author, occurred_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		act.ID, accountID, string(act.Type), act.Title, act.Description, act.Author,
		act.OccurredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddDocument(ctx context.Context, accountID string, d *domain.Document) error {
	return insertDocument(ctx, s.db, accountID, d)
}

func (s *SQLiteStore) AddChecklistItem(ctx context.Context, accountID string, item *domain.ChecklistItem) error {
	return insertChecklistItem(ctx, s.db, accountID, item)
}

func (s *SQLiteStore) SetChecklistItemDone(ctx context.Context, accountID, itemID string, done bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE checklist_items SET completed = ? WHERE id = ? AND account_id = ?`,
		boolToInt(done), itemID, accountID)
	if err != nil {
		return fmt.Errorf("updating checklist item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("checklist item %s: %w", itemID, contract.ErrNotFound)
	}
	return nil
}

func insertContact(ctx context.Context, tx db.DBTX, accountID string, c *domain.Contact, orderIndex int) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO contacts (id, account_id, name, emails, role, phone, is_main, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, accountID, c.Name, encodeStringList(c.Emails), c.Role, c.Phone,
		boolToInt(c.IsMainContact), orderIndex,
	)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}
	return nil
}

func insertChecklistItem(ctx context.Context, tx db.DBTX, accountID string, item *domain.ChecklistItem) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO checklist_items (id, account_id, note, completed, created_at)
			VALUES (?, ?, ?, ?, ?)`,
		item.ID, accountID, item.Note, boolToInt(item.Completed),
		item.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting checklist item: %w", err)
	}
	return nil
}

func insertDocument(ctx context.Context, tx db.DBTX, accountID string, d *domain.Document) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO documents (id, account_id, name, kind, added_at)
			VALUES (?, ?, ?, ?, ?)`,
		d.ID, accountID, d.Name, d.Kind, d.AddedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func scanAccount(rows *sql.Rows) (*domain.Account, error) {
	var a domain.Account
	var kind, stage, importance, createdAt, updatedAt string
	var lastContact sql.NullString

	if err := rows.Scan(&a.ID, &a.Name, &kind, &stage, &importance,
		&lastContact, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning account: %w", err)
	}

	a.Kind = domain.AccountKind(kind)
	a.Stage = domain.Stage(stage)
	a.Importance = domain.Importance(importance)
	a.LastContactAt = parseNullableTime(lastContact, time.RFC3339)

	var err error
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}

// loadChildren fills contacts, activities, checklist items and documents
// for the given accounts in four batched queries.
func (s *SQLiteStore) loadChildren(ctx context.Context, byID map[string]*domain.Account) error {
	if len(byID) == 0 {
		return nil
	}
	if err := s.loadContacts(ctx, byID); err != nil {
		return err
	}
	if err := s.loadActivities(ctx, byID); err != nil {
		return err
	}
	if err := s.loadChecklists(ctx, byID); err != nil {
		return err
	}
	return s.loadDocuments(ctx, byID)
}

func (s *SQLiteStore) loadContacts(ctx context.Context, byID map[string]*domain.Account) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, name, emails, role, phone, is_main
			FROM contacts ORDER BY account_id, order_index`)
	if err != nil {
		return fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Contact
		var accountID, emails string
		var isMain int
		if err := rows.Scan(&c.ID, &accountID, &c.Name, &emails, &c.Role, &c.Phone, &isMain); err != nil {
			return fmt.Errorf("scanning contact: %w", err)
		}
		c.Emails = decodeStringList(emails)
		c.IsMainContact = intToBool(isMain)
		if a, ok := byID[accountID]; ok {
			a.Contacts = append(a.Contacts, c)
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadActivities(ctx context.Context, byID map[string]*domain.Account) error {
	// Newest first: the domain relies on this ordering.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, type, title, description, author, occurred_at
			FROM activities ORDER BY account_id, occurred_at DESC, id`)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var act domain.Activity
		var accountID, actType, occurredAt string
		if err := rows.Scan(&act.ID, &accountID, &actType, &act.Title,
			&act.Description, &act.Author, &occurredAt); err != nil {
			return fmt.Errorf("scanning activity: %w", err)
		}
		act.Type = domain.ActivityType(actType)
		act.OccurredAt, err = time.Parse(time.RFC3339, occurredAt)
		if err != nil {
			return fmt.Errorf("parsing occurred_at: %w", err)
		}
		if a, ok := byID[accountID]; ok {
			a.Activities = append(a.Activities, act)
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadChecklists(ctx context.Context, byID map[string]*domain.Account) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, note, completed, created_at
			FROM checklist_items ORDER BY account_id, created_at, id`)
	if err != nil {
		return fmt.Errorf("listing checklist items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ChecklistItem
		var accountID, createdAt string
		var completed int
		if err := rows.Scan(&item.ID, &accountID, &item.Note, &completed, &createdAt); err != nil {
			return fmt.Errorf("scanning checklist item: %w", err)
		}
		item.Completed = intToBool(completed)
		item.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return fmt.Errorf("parsing checklist created_at: %w", err)
		}
		if a, ok := byID[accountID]; ok {
			a.Checklist = append(a.Checklist, item)
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadDocuments(ctx context.Context, byID map[string]*domain.Account) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, name, kind, added_at
			FROM documents ORDER BY account_id, added_at, id`)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc domain.Document
		var accountID, addedAt string
		if err := rows.Scan(&doc.ID, &accountID, &doc.Name, &doc.Kind, &addedAt); err != nil {
			return fmt.Errorf("scanning document: %w", err)
		}
		doc.AddedAt, err = time.Parse(time.RFC3339, addedAt)
		if err != nil {
			return fmt.Errorf("parsing added_at: %w", err)
		}
		if a, ok := byID[accountID]; ok {
			a.Documents = append(a.Documents, doc)
		}
	}
	return rows.Err()
}
